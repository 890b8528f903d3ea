package authsdk

// ============================================================================
// Shared request/response types
//
// These DTOs are used by both the HTTP handlers (to encode responses) and the
// SDK client (to decode them), so the wire format only has to be right once.
// ============================================================================

// ErrorResponse is the standard error envelope for every non-2xx response.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Login
// ============================================================================

// LoginRequest carries the credentials for POST /v1/login.
type LoginRequest struct {
	// Provider selects the auth provider: "" (anonymous), "server" or "github"
	Provider string `json:"provider"`

	// Key is the provider-specific credential: the anonymous player id, a
	// pre-shared server secret, or a GitHub authorization code
	Key string `json:"key"`

	// Context is extra provider input; the GitHub provider reads the
	// redirect URI from it
	Context string `json:"context,omitempty"`

	// Role is the role requested for a first login (e.g., "user", "admin").
	// Existing players keep their recorded roles regardless of this value.
	Role string `json:"role"`
}

// LoginResponse is the result of a successful credential check. Locked
// players still get a response describing their account, but no access token.
type LoginResponse struct {
	// PlayerID is the internal ULID identifying the player
	PlayerID string `json:"player_id"`

	// Provider and ProviderUserID echo the resolved identity
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id"`

	// Roles currently held by the player
	Roles []string `json:"roles"`

	// Locked reports whether the account is locked. Locked accounts never
	// receive an access token.
	Locked bool `json:"locked"`

	// FirstTimeSetup is true exactly once: when this login created the very
	// first admin account
	FirstTimeSetup bool `json:"first_time_setup"`

	// AccessToken is a signed JWT, empty when the account is locked
	AccessToken string `json:"access_token,omitempty"`

	// TokenType is "Bearer" whenever AccessToken is set
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the access token lifetime in seconds
	ExpiresIn int `json:"expires_in,omitempty"`
}

// ============================================================================
// Token verification
// ============================================================================

// AuthRequest carries a token for POST /v1/auth.
type AuthRequest struct {
	Token string `json:"token"`
}

// AuthResponse describes the identity behind a valid access token.
type AuthResponse struct {
	PlayerID       string   `json:"player_id"`
	Roles          []string `json:"roles"`
	Provider       string   `json:"provider"`
	ProviderUserID string   `json:"provider_user_id"`
}

// ============================================================================
// Player management
// ============================================================================

// LockPlayerRequest identifies the player to lock or unlock by the external
// identity the game servers know players by.
type LockPlayerRequest struct {
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id"`
}

// PlayerInfo is the listing/lock-management view of a player.
type PlayerInfo struct {
	PlayerID       string   `json:"player_id"`
	Provider       string   `json:"provider"`
	ProviderUserID string   `json:"provider_user_id"`
	Roles          []string `json:"roles"`
	Locked         bool     `json:"locked"`
}

// PlayerListResponse is one page of players holding the "user" role.
type PlayerListResponse struct {
	Players []PlayerInfo `json:"players"`

	// TotalPlayers is the total number of players across all pages
	TotalPlayers int `json:"total_players"`

	// TotalPages is the number of pages at the fixed page size of 100
	TotalPages int `json:"total_pages"`
}

// AdminListResponse lists every admin account, locked ones included.
type AdminListResponse struct {
	Admins []PlayerInfo `json:"admins"`
}

// ============================================================================
// Secret keys
// ============================================================================

// SecretKeyResponse returns a freshly generated pre-shared server key.
type SecretKeyResponse struct {
	Key string `json:"key"`
}

// SecretKeyListResponse enumerates all currently valid pre-shared keys.
type SecretKeyListResponse struct {
	Keys []string `json:"keys"`
}

// ============================================================================
// Health
// ============================================================================

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
