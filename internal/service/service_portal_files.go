package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/internal/store"
	"github.com/MKhiriev/go-doc-portal/internal/validators"
	"github.com/MKhiriev/go-doc-portal/models"
)

// portalFilesService stores files under the ID of a link that
// [PortalAccessService.AuthorizeLinkOperation] has already approved.
type portalFilesService struct {
	files     store.FileStorage
	validator validators.Validator
	logger    *logger.Logger
}

func NewPortalFilesService(files store.FileStorage, validator validators.Validator, logger *logger.Logger) PortalFilesService {
	return &portalFilesService{
		files:     files,
		validator: validator,
		logger:    logger,
	}
}

func (s *portalFilesService) List(ctx context.Context, link models.PortalLink) ([]models.PortalFile, error) {
	files, err := s.files.List(ctx, link.ID)
	if err != nil {
		return nil, mapFileError(err)
	}
	return files, nil
}

// Upload reduces a client-supplied name to its base name before validating
// it, so "C:\docs\a.pdf" and "docs/a.pdf" are both stored as "a.pdf".
func (s *portalFilesService) Upload(ctx context.Context, link models.PortalLink, name string, size int64, r io.Reader) (models.PortalFile, error) {
	name = sanitizeFileName(name)

	err := s.validator.Validate(ctx, models.PortalFile{Name: name, Size: size}, validators.FieldFileName, validators.FieldFileSize)
	if err != nil {
		return models.PortalFile{}, fmt.Errorf("%w: %w", ErrInvalidFileName, err)
	}

	file, err := s.files.Save(ctx, link.ID, name, size, r)
	if err != nil {
		return models.PortalFile{}, mapFileError(err)
	}

	logger.FromContext(ctx).Info().
		Str("link_id", link.ID).
		Str("file", file.Name).
		Int64("size", file.Size).
		Msg("file uploaded")

	return file, nil
}

// Download does not sanitize: a name that is not already a base name is
// rejected.
func (s *portalFilesService) Download(ctx context.Context, link models.PortalLink, name string) (io.ReadCloser, models.PortalFile, error) {
	if err := s.validator.Validate(ctx, models.PortalFile{Name: name}, validators.FieldFileName); err != nil {
		return nil, models.PortalFile{}, fmt.Errorf("%w: %w", ErrInvalidFileName, err)
	}

	rc, file, err := s.files.Open(ctx, link.ID, name)
	if err != nil {
		return nil, models.PortalFile{}, mapFileError(err)
	}

	return rc, file, nil
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}
	return path.Base(name)
}

func mapFileError(err error) error {
	switch {
	case errors.Is(err, store.ErrFileNotFound):
		return ErrFileNotFound
	case errors.Is(err, store.ErrInvalidObjectName):
		return ErrInvalidFileName
	default:
		return fmt.Errorf("file storage failure: %w", err)
	}
}
