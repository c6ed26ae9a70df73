package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrRecordNotFound is returned when a lookup or an update targets a row
	// that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrDocumentOwnerMismatch is returned when a document id is already
	// taken by another owner in the same collection.
	ErrDocumentOwnerMismatch = errors.New("document belongs to another owner")

	// ErrEncodingFields is returned when document fields cannot be
	// marshaled to or from JSON.
	ErrEncodingFields = errors.New("error encoding document fields")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction means the transaction is rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")
)
