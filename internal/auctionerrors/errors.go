package auctionerrors

import "errors"

// Error kinds surfaced to callers. Concrete errors below match one of them via errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// kindError carries a user-facing message and unwraps to its kind
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// not found
var (
	ErrVehicleNotFound       = newKind("vehicle does not exist", ErrNotFound)
	ErrActiveAuctionNotFound = newKind("active auction does not exist", ErrNotFound)
)

// conflict
var (
	ErrVehicleExists         = newKind("vehicle already exists", ErrConflict)
	ErrAuctionAlreadyStarted = newKind("auction already started", ErrConflict)
)

// business rule violations
var (
	ErrBidTooLow        = newKind("bid rejected: a higher bid already exists", ErrValidation)
	ErrInvalidVehicleID = newKind("vehicle id must be positive", ErrValidation)
)

// Repository-level errors. These are invariant violations, not client errors.
var (
	ErrMultipleActiveAuctions = errors.New("more than one active auction matched")
	ErrAuctionMissing         = errors.New("auction record missing")
	ErrAuctionReactivation    = errors.New("closed auction cannot be reactivated")
)
