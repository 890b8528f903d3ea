// Package provider implements the credential providers players can log in
// with. Each provider exchanges an opaque key (and optional context) for a
// stable user id within the provider's own namespace.
package provider

import (
	"context"
	"errors"
)

// ErrAuthFailed is returned by Authenticate when the credential could not be
// verified. The engine maps any authentication error, this one or otherwise
// (timeouts included), to an invalid-credentials rejection.
var ErrAuthFailed = errors.New("provider: authentication failed")

// AuthProvider is a named strategy for turning an opaque credential into a
// stable external user id.
type AuthProvider interface {
	// ID returns the unique identifier requests use to select this provider.
	ID() string

	// Authenticate verifies the provider-specific key (e.g. an OAuth2 code)
	// with its optional context (e.g. an anti-CSRF state string) and returns
	// the id of the authenticated user within this provider's namespace.
	Authenticate(ctx context.Context, key, authContext string) (string, error)
}

// Registry holds the fixed set of providers, resolved once at startup.
type Registry struct {
	providers map[string]AuthProvider
}

// NewRegistry builds a registry from the given providers. Registering two
// providers with the same id is a programming error.
func NewRegistry(providers ...AuthProvider) *Registry {
	r := &Registry{providers: make(map[string]AuthProvider, len(providers))}
	for _, p := range providers {
		if _, dup := r.providers[p.ID()]; dup {
			panic("provider: duplicate provider id " + p.ID())
		}
		r.providers[p.ID()] = p
	}
	return r
}

// Resolve returns the provider with the given id.
func (r *Registry) Resolve(id string) (AuthProvider, bool) {
	p, ok := r.providers[id]
	return p, ok
}
