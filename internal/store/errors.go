package store

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicateIdentity reports a registration conflict on username or
	// email. Wrap it with DuplicateIdentityError to say which field collided.
	ErrDuplicateIdentity = errors.New("duplicate identity")
)

// DuplicateIdentityError carries the conflicting field ("username" or
// "email") so callers can surface a field-level message.
type DuplicateIdentityError struct {
	Field string
}

func (e *DuplicateIdentityError) Error() string {
	return "duplicate identity: " + e.Field + " already taken"
}

func (e *DuplicateIdentityError) Unwrap() error { return ErrDuplicateIdentity }
