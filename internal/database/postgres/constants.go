package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Player Save Operations
const (
	ErrMsgFailedToGetPlayerSave    = "failed to get player save"
	ErrMsgFailedToParsePlayerSave  = "failed to parse player save"
	ErrMsgFailedToEncodePlayerSave = "failed to encode player save"
	ErrMsgFailedToSavePlayerSave   = "failed to save player save"
	ErrMsgFailedToSpendMoney       = "failed to spend money"
	ErrMsgFailedToDepositMoney     = "failed to deposit money"
)

// Error Messages - Education Save Operations
const (
	ErrMsgFailedToGetEducationSave    = "failed to get education save"
	ErrMsgFailedToParseEducationSave  = "failed to parse education save"
	ErrMsgFailedToEncodeEducationSave = "failed to encode education save"
	ErrMsgFailedToSaveEducationSave   = "failed to save education save"
)

// Log Messages
const (
	LogMsgMigratedLegacyEducationSave = "Migrated legacy tick-count education save"
)
