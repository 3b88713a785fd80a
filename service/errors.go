package service

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Domain error kinds. Every operation returns one of these (possibly
// wrapped) for expected outcomes; handlers translate them to HTTP statuses.
var (
	// ErrSelfReference is returned when a profile acts on itself
	// (self-collaboration, self-invite).
	ErrSelfReference = errors.New("cannot perform this action on yourself")

	// ErrDuplicateRequest is returned when a pending or accepted
	// collaboration edge already exists between the pair, in either
	// direction, for the requested type.
	ErrDuplicateRequest = errors.New("collaboration request or relationship already exists")

	// ErrDuplicateInvite is returned when a pending event invite to the
	// invitee already exists for the event.
	ErrDuplicateInvite = errors.New("invite already sent for this event")

	// ErrNoPendingInvite is returned by accept/reject when there is nothing
	// pending to act on. Accepted and rejected are terminal states.
	ErrNoPendingInvite = errors.New("no pending invite")

	// ErrAlreadyMember is returned when the invitee is already a
	// collaborator on the event.
	ErrAlreadyMember = errors.New("already a collaborator on this event")

	// ErrNotAuthorized is returned when the permission predicate fails.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrTooManyMedia is returned when a post carries more media items than
	// MaxMediaPerPost.
	ErrTooManyMedia = errors.New("too many media items")

	// ErrInvalidMedia is returned when a media item fails validation; the
	// whole post is rolled back.
	ErrInvalidMedia = errors.New("invalid media item")

	// ErrNotFound is returned when a referenced profile, event or invite
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when creating a record that must be
	// unique, such as a second profile for the same user.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned for malformed enum values, dates or times.
	ErrInvalidInput = errors.New("invalid input")
)

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure. The uniqueness indexes are the race-safety backstop: a losing
// concurrent writer sees this instead of a duplicate row.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
