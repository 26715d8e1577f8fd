package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a query, update or delete targets a
	// note id that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteAlreadyShared is returned when a share row for the same
	// (note, user) pair already exists.
	ErrNoteAlreadyShared = errors.New("note is already shared with user")

	// ErrReferenceNotFound is returned when a write refers to a user or note
	// that does not exist (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced user or note does not exist")

	// ErrUnsupportedDSN is returned by [NewStorages] for an unknown DSN scheme.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
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
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
