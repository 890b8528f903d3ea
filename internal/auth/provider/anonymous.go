package provider

import "context"

// Anonymous is the no-verification provider: callers supply their own stable
// id as the key and it is accepted verbatim. Suitable for guest play only;
// anyone who knows an id can log in as it.
type Anonymous struct{}

func NewAnonymous() *Anonymous { return &Anonymous{} }

// ID is the empty string; requests that omit a provider get this one.
func (*Anonymous) ID() string { return "" }

func (*Anonymous) Authenticate(ctx context.Context, key, authContext string) (string, error) {
	return key, nil
}
