package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrLabelTooLong      = errors.New("label is too long")
	ErrExpiryNotInFuture = errors.New("expiry must be in the future")
	ErrEmptyFileName     = errors.New("file name is required")
	ErrFileNameTooLong   = errors.New("file name is too long")
	ErrInvalidFileName   = errors.New("file name must be a plain base name")
	ErrNegativeFileSize  = errors.New("file size must not be negative")
)
