package shell

import "errors"

var (
	// ErrResourceNotFound is returned when a command references a resource the library does not know.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMemberNotFound is returned when a command references a member the library does not know.
	ErrMemberNotFound = errors.New("member not found")

	// ErrDuplicateResource is returned when adding a resource whose ID is already in the catalog.
	ErrDuplicateResource = errors.New("duplicate resource")

	// ErrDuplicateMember is returned when registering a member whose ID is already taken.
	ErrDuplicateMember = errors.New("duplicate member")
)
