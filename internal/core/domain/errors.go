package domain

import "errors"

var (
	// ErrInvalidCredentials covers empty or rejected login input.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when the upstream API answers 401.
	// The upstream client has already applied the global logout policy
	// by the time a caller sees this.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the upstream API answers 403. No
	// global action is taken; the calling handler decides.
	ErrForbidden = errors.New("forbidden")

	// ErrFeatureDenied means the user's role does not grant the feature
	// behind a gated route.
	ErrFeatureDenied = errors.New("feature not permitted for role")

	// ErrSessionNotFound means the session id resolved to nothing:
	// expired, logged out, or never issued.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotFound is returned when the upstream API answers 404.
	ErrNotFound = errors.New("resource not found")

	// ErrUpstream is returned when the upstream API answers with a
	// server error (>= 500) or is unreachable.
	ErrUpstream = errors.New("upstream error")
)
