package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match them
// with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered. The unique constraint on users.email is the source
	// of truth, so concurrent registrations end up here as well.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when a clothes entry does not exist, including
	// the case where it was deleted between a check and an update.
	ErrEntryNotFound = errors.New("clothes entry was not found")

	// ErrInvalidReference is returned when an entry names a user that does not
	// exist (foreign key violation).
	ErrInvalidReference = errors.New("entry references a missing user")

	// ErrEmptyFilter is returned by ListEntries when the filter names neither
	// a customer nor a vendor.
	ErrEmptyFilter = errors.New("entry filter is empty")

	// ErrNoFieldsToUpdate is returned by UpdateEntry for an empty update.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. Repository methods wrap driver
// errors with these before any domain mapping applies.
var (
	// ErrBuildingSQLQuery is returned when a dynamic query cannot be built.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a single result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to iterate rows")
)
