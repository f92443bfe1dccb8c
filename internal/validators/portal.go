package validators

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-doc-portal/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldLabel targets the human-readable label of a link request.
	FieldLabel = "label"

	// FieldExpiresAt targets the optional expiry of a link request.
	FieldExpiresAt = "expires_at"

	// FieldFileName targets the name of an uploaded or requested file.
	FieldFileName = "file_name"

	// FieldFileSize targets the declared size of an upload.
	FieldFileSize = "file_size"
)

const (
	MaxLabelLength    = 200
	MaxFileNameLength = 255
)

// PortalValidator implements [Validator] for [models.CreateLinkRequest] and
// [models.PortalFile].
type PortalValidator struct {
	now func() time.Time
}

// NewPortalValidator returns a [Validator] that checks expiry against the
// wall clock.
func NewPortalValidator() Validator {
	return &PortalValidator{now: time.Now}
}

// NewPortalValidatorWithClock is [NewPortalValidator] with an injected clock.
func NewPortalValidatorWithClock(now func() time.Time) Validator {
	return &PortalValidator{now: now}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// each model are accepted; anything else yields [ErrUnsupportedType].
func (v *PortalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateLinkRequest:
		return v.validateCreateLinkRequest(ctx, value, fields...)
	case *models.CreateLinkRequest:
		return v.validateCreateLinkRequest(ctx, *value, fields...)

	case models.PortalFile:
		return v.validatePortalFile(ctx, value, fields...)
	case *models.PortalFile:
		return v.validatePortalFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateLinkRequest checks label and expiry by default.
func (v *PortalValidator) validateCreateLinkRequest(_ context.Context, req models.CreateLinkRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel, FieldExpiresAt}
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if len(req.Label) > MaxLabelLength {
				return ErrLabelTooLong
			}
		case FieldExpiresAt:
			if req.ExpiresAt != nil && !req.ExpiresAt.After(v.now()) {
				return ErrExpiryNotInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePortalFile checks only the name by default; uploads add
// FieldFileSize.
func (v *PortalValidator) validatePortalFile(_ context.Context, file models.PortalFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if err := validateFileName(file.Name); err != nil {
				return err
			}
		case FieldFileSize:
			if file.Size < -1 {
				return ErrNegativeFileSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFileName accepts a single visible path element: no separators,
// no dot-files, no control characters.
func validateFileName(name string) error {
	switch {
	case name == "":
		return ErrEmptyFileName
	case len(name) > MaxFileNameLength:
		return ErrFileNameTooLong
	case name == "." || name == ".." || strings.HasPrefix(name, "."):
		return ErrInvalidFileName
	case strings.ContainsAny(name, `/\`):
		return ErrInvalidFileName
	case strings.IndexFunc(name, unicode.IsControl) >= 0:
		return ErrInvalidFileName
	}

	return nil
}
