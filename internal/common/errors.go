// Package common defines the sentinel errors shared by the core services.
// Handlers match on these with errors.Is to pick a response status.
package common

import "errors"

// Swipe errors
var (
	// ErrListingNotFound — the listing does not exist or is no longer active
	ErrListingNotFound = errors.New("listing not found")
	// ErrSelfSwipeForbidden — a user tried to swipe on their own listing
	ErrSelfSwipeForbidden = errors.New("cannot swipe on your own listing")
)

// Swap circle errors
var (
	// ErrCircleNotFound — the swap circle does not exist
	ErrCircleNotFound = errors.New("swap circle not found")
	// ErrCircleFull — the circle is already at capacity
	ErrCircleFull = errors.New("swap circle is full")
	// ErrDuplicateRSVP — the user already holds a slot in this circle
	ErrDuplicateRSVP = errors.New("already attending this swap circle")
	// ErrRSVPNotFound — no RSVP exists for this user and circle
	ErrRSVPNotFound = errors.New("rsvp not found")
)

// User / karma errors
var (
	// ErrUserNotFound — the user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateNickname — the nickname is already taken
	ErrDuplicateNickname = errors.New("nickname already taken")
	// ErrInvariantViolation — the karma ledger sum disagrees with the cached
	// point total. Indicates a bug; never expected in normal operation.
	ErrInvariantViolation = errors.New("karma ledger invariant violation")
)
