package domain

import "time"

// SecretKey is a pre-shared credential accepted by the "server" auth provider.
// The key value is its own identity; keys stay valid until explicitly revoked.
type SecretKey struct {
	Key       string
	CreatedAt time.Time
}
