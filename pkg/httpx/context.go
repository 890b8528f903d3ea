package httpx

import "context"

type ctxKey string

const (
	CtxKeyPlayerID ctxKey = "player_id"
	CtxKeyRoles    ctxKey = "roles"
)

func rolesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyRoles).([]string); ok {
		return v
	}
	return nil
}

// PlayerIDFromContext returns the authenticated player id, if any.
func PlayerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyPlayerID).(string)
	return id, ok
}
