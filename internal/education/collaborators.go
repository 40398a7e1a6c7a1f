package education

import (
	"context"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// The education core does not own player money, stats or skills. It reaches
// them through these narrow collaborator interfaces, provided at wiring time.

// Funds is the shared money store. A false Spend result is authoritative:
// the core treats it as a final failure and never retries. Deposit is the
// compensating credit for a debit whose enrollment could not be persisted.
type Funds interface {
	Balance(ctx context.Context, playerID string) (int64, error)
	Spend(ctx context.Context, playerID string, amount int64) (bool, error)
	Deposit(ctx context.Context, playerID string, amount int64) error
}

// StatStore is a read/write view over one flat stat domain. Clamping is the
// store's own responsibility, not the caller's.
type StatStore interface {
	Get(ctx context.Context, playerID, key string) (float64, error)
	Set(ctx context.Context, playerID, key string, value float64) error
}

// SkillStore holds the single leveled skill. Level capping is the store's
// responsibility.
type SkillStore interface {
	GetMartialArts(ctx context.Context, playerID string) (domain.LeveledSkill, error)
	SetMartialArts(ctx context.Context, playerID string, skill domain.LeveledSkill) error
}

// Collaborators bundles every external store the education core writes to.
type Collaborators struct {
	Funds  Funds
	Stats  map[domain.StatDomain]StatStore
	Skills SkillStore
}
