package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/models"
)

const tempFilePattern = ".upload-*"

// localFileStorage stores portal files on the local filesystem as
// <root>/<linkID>/<name>. Writes go to a temp file in the same directory and
// are renamed into place, so readers never see a partial upload.
type localFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalFileStorage creates root if needed and returns a [FileStorage] on it.
func NewLocalFileStorage(root string, log *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		log.Err(err).Str("func", "NewLocalFileStorage").Str("dir", root).Msg("error creating files directory")
		return nil, fmt.Errorf("error creating files directory: %w", err)
	}

	return &localFileStorage{root: root, logger: log}, nil
}

func (s *localFileStorage) List(ctx context.Context, linkID string) ([]models.PortalFile, error) {
	if err := validateObjectName(linkID); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(s.root, linkID))
	if errors.Is(err, fs.ErrNotExist) {
		return []models.PortalFile{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localFileStorage.List").Str("link_id", linkID).Msg("error reading link directory")
		return nil, fmt.Errorf("error reading link directory: %w", err)
	}

	files := make([]models.PortalFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, fileFromInfo(info))
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}

func (s *localFileStorage) Save(ctx context.Context, linkID, name string, _ int64, r io.Reader) (models.PortalFile, error) {
	log := logger.FromContext(ctx)

	if err := validateObjectName(linkID); err != nil {
		return models.PortalFile{}, err
	}
	if err := validateObjectName(name); err != nil {
		return models.PortalFile{}, err
	}

	dir := filepath.Join(s.root, linkID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Msg("error creating link directory")
		return models.PortalFile{}, fmt.Errorf("error creating link directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Msg("error creating temp file")
		return models.PortalFile{}, fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err = io.Copy(tmp, &contextReader{ctx: ctx, r: r}); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "localFileStorage.Save").Str("link_id", linkID).Msg("error writing file")
		return models.PortalFile{}, fmt.Errorf("error writing file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return models.PortalFile{}, fmt.Errorf("error closing temp file: %w", err)
	}

	target := filepath.Join(dir, name)
	if err = os.Rename(tmp.Name(), target); err != nil {
		log.Err(err).Str("func", "localFileStorage.Save").Msg("error moving file into place")
		return models.PortalFile{}, fmt.Errorf("error moving file into place: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return models.PortalFile{}, fmt.Errorf("error reading file info: %w", err)
	}

	return fileFromInfo(info), nil
}

func (s *localFileStorage) Open(ctx context.Context, linkID, name string) (io.ReadCloser, models.PortalFile, error) {
	if err := validateObjectName(linkID); err != nil {
		return nil, models.PortalFile{}, err
	}
	if err := validateObjectName(name); err != nil {
		return nil, models.PortalFile{}, err
	}

	f, err := os.Open(filepath.Join(s.root, linkID, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, models.PortalFile{}, ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localFileStorage.Open").Str("link_id", linkID).Msg("error opening file")
		return nil, models.PortalFile{}, fmt.Errorf("error opening file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, models.PortalFile{}, fmt.Errorf("error reading file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, models.PortalFile{}, ErrFileNotFound
	}

	return f, fileFromInfo(info), nil
}

func fileFromInfo(info fs.FileInfo) models.PortalFile {
	return models.PortalFile{
		Name:       info.Name(),
		Size:       info.Size(),
		UploadedAt: info.ModTime().UTC(),
	}
}

// validateObjectName rejects anything that is not a single, visible path
// element.
func validateObjectName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidObjectName
	case strings.HasPrefix(name, "."):
		return ErrInvalidObjectName
	case strings.ContainsAny(name, "/\\\x00"):
		return ErrInvalidObjectName
	}
	return nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
