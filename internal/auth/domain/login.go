package domain

// LoginParams carries the credential exchange inputs. Key and Context are
// opaque to the engine; their meaning is defined by the chosen provider.
type LoginParams struct {
	Provider string // provider id, "" selects the anonymous provider
	Key      string // provider-specific credential (e.g. OAuth2 code)
	Context  string // optional provider-specific context (e.g. anti-CSRF state)
	Role     string // role to assume, must be seeded
}

// LoginResult is the outcome of a successful credential exchange. Roles and
// Locked reflect the player's recorded state, which for pre-existing players
// may differ from the role the request asked for.
type LoginResult struct {
	PlayerID       string
	Provider       string
	ProviderUserID string
	Roles          []string
	Locked         bool

	// FirstTimeSetup is true only for the login that created the very first
	// admin. Every later result, including repeat logins of that same admin,
	// reports false.
	FirstTimeSetup bool
}

// PlayerPage is one page of a role-filtered player listing.
type PlayerPage struct {
	Players      []Player
	TotalPlayers int
	TotalPages   int
}
