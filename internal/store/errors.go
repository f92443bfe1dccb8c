package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLinkNotFound is returned when no link matches the token or ID, or
	// the link belongs to another owner.
	ErrLinkNotFound = errors.New("portal link was not found")

	// ErrTokenAlreadyExists is returned when an INSERT collides with the
	// unique token index.
	ErrTokenAlreadyExists = errors.New("portal link token already exists")

	// ErrFileNotFound is returned when a requested file does not exist
	// under the link.
	ErrFileNotFound = errors.New("file was not found")

	// ErrInvalidObjectName is returned when a file name would escape the
	// link's namespace.
	ErrInvalidObjectName = errors.New("invalid file name")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// database driver.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan portal link row")
)
