package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError      = errors.New("internal error")
	GeneratingToken    = errors.New("error generating token")
	EmailRequired      = errors.New("email is required")
	FailedToCreateUser = errors.New("failed to create user")
	Unauthorized       = errors.New("unauthorized")
	Forbidden          = errors.New("admin privileges required")
)
