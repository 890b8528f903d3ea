package jwtx

import "errors"

var (
	ErrNoSecret    = errors.New("jwtx: signing secret not configured")
	ErrInvalid     = errors.New("jwtx: invalid token")
	ErrIssuer      = errors.New("jwtx: unexpected issuer")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)
