// Package v1 provides the business logic for API version 1: credential
// verification, session token issuance, and the favorites collection.
//
// Sentinel errors below are wrapped with context via fmt.Errorf("%w") when
// returned and mapped to HTTP statuses in the web layer with errors.Is.
package v1

import "errors"

var (
	// ErrInvalidCredentials indicates the email/password pair is wrong.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates the account does not exist.
	// HTTP Status: 401 Unauthorized (don't reveal account existence)
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already registered.
	// HTTP Status: 409 Conflict
	ErrEmailTaken = errors.New("email already registered")

	// ErrMissingField indicates a required request field is absent.
	// HTTP Status: 400 Bad Request
	ErrMissingField = errors.New("missing required field")
)
