package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrLinkNotFound covers unknown tokens and links owned by someone else.
	ErrLinkNotFound = errors.New("portal link not found")

	// ErrLinkUnusable is wrapped by every terminal link state.
	ErrLinkUnusable = errors.New("portal link is unusable")
	ErrLinkInactive = fmt.Errorf("%w: inactive", ErrLinkUnusable)
	ErrLinkExpired  = fmt.Errorf("%w: expired", ErrLinkUnusable)
	ErrLinkLocked   = fmt.Errorf("%w: locked", ErrLinkUnusable)

	ErrWrongPassword = errors.New("wrong password")

	// ErrPasswordNotRequired is returned when a password is submitted for a
	// link that has none. No session is issued in that case.
	ErrPasswordNotRequired = errors.New("portal link is not password protected")

	ErrInvalidFileName = errors.New("invalid file name")
	ErrFileNotFound    = errors.New("file not found")

	ErrOwnerTokenInvalid     = errors.New("owner token is expired or invalid")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
