package store

import "errors"

// Low-level database operation errors. These are returned (wrapped) by the
// SQL storage when an operation fails before any value handling.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a row into a value fails.
	ErrScanningRow = errors.New("failed to scan kv row")
)

// Storage-level errors shared by all backends.
var (
	// ErrUnknownDriver is returned by [NewKeyValueStorage] for an
	// unsupported driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrStorageClosed is returned by operations on a closed storage.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrReadingFile and ErrWritingFile wrap failures of the JSON-file backend.
	ErrReadingFile = errors.New("error reading storage file")
	ErrWritingFile = errors.New("error writing storage file")
)
