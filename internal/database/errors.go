package database

import "errors"

// Error kinds returned by store operations. The API handlers map these to
// HTTP statuses; anything else is an internal database failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotMember    = errors.New("not a member")
)

// expected reports whether err is one of the store's error kinds, as opposed
// to a database failure worth logging.
func expected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrNotMember)
}
