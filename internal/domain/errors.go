package domain

import "errors"

var (
	ErrSeatNotFound  = errors.New("seat not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

var (
	ErrSeatOccupied            = errors.New("seat already occupied")
	ErrSeatNotOccupied         = errors.New("seat is not occupied")
	ErrOwnerSeatHeld           = errors.New("owner's seat is held by another occupant")
	ErrInvalidRelocationTarget = errors.New("relocation target seat is occupied")
	ErrRelocationPending       = errors.New("a relocation is already pending")
	ErrNoRelocationPending     = errors.New("no relocation is pending")
)

var (
	ErrWeekLocked   = errors.New("next week is locked for changes")
	ErrWeekInactive = errors.New("current week booking window is closed")
)

var (
	// ErrRecordWriteFailed wraps store write failures; the operation
	// must be treated as not applied.
	ErrRecordWriteFailed = errors.New("record write failed")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrBadCredentials = errors.New("bad admin credentials")
)
