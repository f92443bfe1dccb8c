package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrGone                = errors.New("link is no longer available")
	ErrTooLarge            = errors.New("payload too large")
	ErrLocked              = errors.New("link is locked")
	ErrInternalServerError = errors.New("internal server error")

	// ErrWrongPassword wraps [ErrUnauthorized] for a rejected password.
	ErrWrongPassword = errors.Join(ErrUnauthorized, errors.New("wrong password"))
)
