package models

import "errors"

// Request-level error taxonomy. All of these are recoverable at the request
// boundary: the request aborts with a user-facing message and no partial
// result, subsequent requests are unaffected.
var (
	// ErrParse indicates malformed CSV input or missing mandatory columns.
	ErrParse = errors.New("failed to parse game log")

	// ErrInsufficientData indicates fewer games than the minimum required
	// for a stable feature vector.
	ErrInsufficientData = errors.New("insufficient game history")

	// ErrInvalidOdds indicates decimal odds at or below 1.
	ErrInvalidOdds = errors.New("invalid odds: must be greater than 1")

	// ErrInvalidBankroll indicates a non-positive bankroll or
	// non-positive remaining events count.
	ErrInvalidBankroll = errors.New("invalid bankroll state")

	// ErrNotFound indicates a missing record.
	ErrNotFound = errors.New("record not found")

	// ErrProjectTerminal indicates a mutation attempt on a completed or
	// failed project.
	ErrProjectTerminal = errors.New("project already completed or failed")

	// ErrEventSettled indicates a result submitted for an event that
	// already has one.
	ErrEventSettled = errors.New("event already settled")

	// ErrUnknownPlayer indicates a slug not present in the registry.
	ErrUnknownPlayer = errors.New("unknown player")
)
