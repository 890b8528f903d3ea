package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/opengamebackend/auth/internal/auth/service"
	"github.com/opengamebackend/auth/internal/auth/store"
	"github.com/opengamebackend/auth/pkg/httpx"
	"github.com/opengamebackend/auth/pkg/slogx"

	_ "github.com/opengamebackend/auth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService       *service.AuthService
	TokenService      *service.TokenService
	PlayersService    *service.PlayersService
	SecretKeysService *service.SecretKeysService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerLogin()
	r.registerPlayers()
	r.registerSecretKeys()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Player Auth Service API
//	@version		0.1.0
//	@description	Authentication service for a multiplayer-game backend. Exchanges
//	@description	provider credentials (anonymous id, pre-shared server secret, or a
//	@description	GitHub OAuth2 code) for HS512-signed JWT access tokens, and exposes
//	@description	admin endpoints for player listings, account locking and secret keys.
//
//	@contact.name				Open Game Backend
//	@contact.url				https://github.com/opengamebackend/auth
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerLogin() {
	// POST /login - strict rate limit by IP (credential exchange endpoint)
	loginHandler := &LoginHandler{
		AuthService:  r.AuthService,
		TokenService: r.TokenService,
	}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth - moderate rate limit (token verification by game services)
	authHandler := &AuthHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth",
		httpx.Chain(authHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPlayers() {
	h := &PlayersHandler{PlayersService: r.PlayersService}

	// All player management requires an admin bearer token.
	admin := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RequireAnyRole("admin"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/players", admin(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/admins", admin(http.HandlerFunc(h.HandleListAdmins)))
	r.Mux.Handle("POST /v1/players/lock", admin(http.HandlerFunc(h.HandleLock)))
	r.Mux.Handle("POST /v1/players/unlock", admin(http.HandlerFunc(h.HandleUnlock)))
}

func (r *Router) registerSecretKeys() {
	h := &SecretKeysHandler{SecretKeysService: r.SecretKeysService}

	admin := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RequireAnyRole("admin"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/secrets", admin(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /v1/secrets", admin(http.HandlerFunc(h.HandleGenerate)))
	r.Mux.Handle("DELETE /v1/secrets/{key}", admin(http.HandlerFunc(h.HandleRemove)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
