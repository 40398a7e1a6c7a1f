package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Education operation error messages
	ErrMsgEnrollFailed       = "Failed to enroll"
	ErrMsgCheckEnrollFailed  = "Failed to check eligibility"
	ErrMsgAdvanceFailed      = "Failed to advance quarter"
	ErrMsgStudyFailed        = "Failed to study"
	ErrMsgDropOutFailed      = "Failed to drop out"
	ErrMsgResetFailed        = "Failed to reset education state"
	ErrMsgGetStatusFailed    = "Failed to retrieve education status"
	ErrMsgInvalidTrackParam  = "Invalid track. Valid options: academic, certificate"
	ErrMsgInvalidMultiplier  = "Multiplier must be greater than zero"
	ErrMsgProgramNotFoundMsg = "Program not found"

	// Player operation error messages
	ErrMsgGetPlayerStateFailed = "Failed to retrieve player state"
	ErrMsgNewGameFailed        = "Failed to start new game"
)

// Success messages for API responses
const (
	MsgEnrolledSuccess   = "Enrolled successfully"
	MsgDroppedOutSuccess = "Dropped out"
	MsgResetSuccess      = "Education state reset"
	MsgNewGameSuccess    = "New game started"
)
