package provider

import (
	"context"
	"errors"

	"github.com/opengamebackend/auth/internal/auth/store"
)

// ServerUserID is the fixed external id shared by all trusted game servers.
const ServerUserID = "SERVER"

// Server authenticates trusted game servers with a pre-shared secret key.
// Keys are checked against the store on every login, so a revoked key stops
// working immediately.
type Server struct {
	store store.Store
}

func NewServer(st store.Store) *Server {
	return &Server{store: st}
}

func (*Server) ID() string { return "server" }

func (s *Server) Authenticate(ctx context.Context, key, authContext string) (string, error) {
	_, err := s.store.SecretKeys().GetSecretKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAuthFailed
		}
		return "", err
	}
	return ServerUserID, nil
}
