package store

import "errors"

// Sentinel errors returned by vault backends to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateLabel is returned when a record is stored under a label
	// that is already present in the vault. Recoverable: the caller should
	// pick a different label.
	ErrDuplicateLabel = errors.New("a record with that label already exists")

	// ErrStorageUnavailable is returned (wrapped) when the backing file or
	// database cannot be created, opened, read or written.
	ErrStorageUnavailable = errors.New("vault storage unavailable")

	// ErrCorruptRecord is returned when a persisted line or row does not
	// have the expected record shape (e.g. a missing field delimiter or
	// invalid base64 framing).
	ErrCorruptRecord = errors.New("corrupt vault record")

	// ErrUnknownBackend is returned when the configured storage backend
	// name is not one of the supported values.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors used by the SQLite backend. These are
// returned (or wrapped) when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan vault record rows")
)
