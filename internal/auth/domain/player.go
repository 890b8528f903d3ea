package domain

import "time"

// Player is the service's internal identity, keyed by (Provider, ProviderUserID).
type Player struct {
	ID             string
	Provider       string // id of the auth provider that created this player
	ProviderUserID string // stable identifier within the provider's namespace
	Locked         bool
	Roles          []Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasRole reports whether the player holds the named role.
func (p Player) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the names of all roles held by the player.
func (p Player) RoleNames() []string {
	names := make([]string, len(p.Roles))
	for i, r := range p.Roles {
		names[i] = r.Name
	}
	return names
}
