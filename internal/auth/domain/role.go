package domain

import "time"

// Well-known role names seeded at startup. Custom roles may exist alongside
// these, but the engine only attaches special behaviour to RoleAdmin.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleServer = "server"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
