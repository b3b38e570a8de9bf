// Package common defines sentinel errors shared across the auth-service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Directory errors.
	ErrorNotFound      = errors.New("user not found")
	ErrorAlreadyExists = errors.New("user already exists")

	// Credential errors.
	ErrorInvalidEmail    = errors.New("invalid email format")
	ErrorInvalidPassword = errors.New("invalid password")

	// Token lifecycle errors.
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")

	// Generic flow control.
	ErrorInternal = errors.New("internal error")
)
