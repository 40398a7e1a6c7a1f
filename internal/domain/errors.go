package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// The eligibility resolver and the enrollment service share this vocabulary
// so the client can show one consistent message for a given failure.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Education errors
	ErrMsgProgramNotFound     = "program not found"
	ErrMsgAlreadyCompleted    = "already completed"
	ErrMsgAlreadyEnrolled     = "already enrolled"
	ErrMsgInsufficientFunds   = "insufficient funds"
	ErrMsgMissingPrerequisite = "missing prerequisite"
	ErrMsgTrackOccupied       = "track already occupied - finish or drop the current program first"
	ErrMsgInvalidTrack        = "invalid track"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Education errors
	ErrProgramNotFound   = errors.New(ErrMsgProgramNotFound)
	ErrAlreadyCompleted  = errors.New(ErrMsgAlreadyCompleted)
	ErrAlreadyEnrolled   = errors.New(ErrMsgAlreadyEnrolled)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrTrackOccupied     = errors.New(ErrMsgTrackOccupied)
	ErrInvalidTrack      = errors.New(ErrMsgInvalidTrack)

	// Catalog errors
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
