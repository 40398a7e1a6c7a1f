package player

import "time"

// Cache configuration
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// Error message constants
const (
	ErrMsgGetPlayerFailed  = "failed to get player: %w"
	ErrMsgSavePlayerFailed = "failed to save player: %w"
	ErrMsgSpendFailed      = "failed to spend money: %w"
	ErrMsgDepositFailed    = "failed to deposit money: %w"
	ErrMsgNegativeAmount   = "amount must not be negative"
	ErrMsgUnknownStatKey   = "unknown stat key"
)

// Log message constants
const (
	LogMsgNewGameStarted = "New game started"
	LogMsgMoneySpent     = "Money spent"
	LogMsgMoneyDeposited = "Money deposited"
	LogMsgStatUpdated    = "Stat updated"
	LogMsgSkillUpdated   = "Martial arts skill updated"
)
