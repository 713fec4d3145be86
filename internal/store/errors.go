package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSnapshotNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrSnapshotNotSaved = errors.New("snapshot was not saved")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan snapshot rows")

	// ErrDecodingProducts is returned when the stored products column is not
	// valid JSON.
	ErrDecodingProducts = errors.New("failed to decode stored products")
)
