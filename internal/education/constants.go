package education

// User-visible reason formats. The eligibility resolver and Enroll share
// this vocabulary so the UI shows one consistent message per failure mode.
const (
	ReasonNotFound             = "not found"
	ReasonAlreadyCompleted     = "already completed"
	ReasonAlreadyEnrolled      = "already enrolled"
	ReasonFmtInsufficientFunds = "insufficient funds: costs $%s"
	ReasonFmtMissingPrereq     = "missing prerequisite: %s"
)

// User-visible progress messages
const (
	MsgFmtGraduated     = "Graduated from %s!"
	MsgFmtStudyProgress = "Studied %s: %.1f%% complete"
)

// Error message constants
const (
	ErrMsgGetStateFailed    = "failed to get education state: %w"
	ErrMsgSaveStateFailed   = "failed to save education state: %w"
	ErrMsgGetBalanceFailed  = "failed to get balance: %w"
	ErrMsgSpendFailed       = "failed to spend funds: %w"
	ErrMsgInvalidMultiplier = "multiplier must be positive"
)

// Log message constants
const (
	LogMsgEnrolled           = "Enrolled in program"
	LogMsgEnrollmentRejected = "Enrollment rejected"
	LogMsgQuarterAdvanced    = "Quarter advanced"
	LogMsgGraduated          = "Program completed"
	LogMsgDroppedOut         = "Dropped out of program"
	LogMsgStateReset         = "Education state reset"
	LogMsgRefundFailed       = "Failed to refund tuition after save failure"
	LogMsgUnknownStat        = "Unknown stat in bonus table, skipping"
	LogMsgBonusApplyFailed   = "Failed to apply stat bonus"
	LogMsgPublishFailed      = "Failed to publish event"
)
