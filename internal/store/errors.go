package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHistoryEntryExists is returned when an entry with the same id is
	// already stored.
	ErrHistoryEntryExists = errors.New("history entry already exists")

	// ErrHistoryEntryNotSaved is returned when an INSERT completes without
	// error but affects no rows.
	ErrHistoryEntryNotSaved = errors.New("history entry was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan history rows")

	// ErrUnsupportedDSN is returned when a history DSN names a scheme other
	// than postgres.
	ErrUnsupportedDSN = errors.New("unsupported history DSN")
)
