package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrNoOwnerToken   = errors.New("owner token is not set")
	ErrNoPassword     = errors.New("password is not set")
)
