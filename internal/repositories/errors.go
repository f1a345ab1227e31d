package repositories

import "errors"

var (
	// ErrNotConnected is returned by every operation on a repository whose
	// database handle was never established. A failed startup connection is
	// not fatal to the process; each request fails on its own instead.
	ErrNotConnected = errors.New("database not connected")

	// ErrEmailTaken is returned when a user insert collides with the unique
	// index on the email column.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound covers both a missing record and, for the owned blog
	// mutations, an authorEmail that does not match the stored one. The two
	// are indistinguishable by design: the ownership filter runs inside the
	// same store statement as the mutation.
	ErrNotFound = errors.New("record not found")
)
