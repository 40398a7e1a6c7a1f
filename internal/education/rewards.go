package education

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
	"github.com/halcyonworks/QuarterLife_Go/internal/metrics"
)

// SkillLevelStep is how much raw bonus amount converts into one skill level.
const SkillLevelStep = 10

// Router applies stat bonuses to the external collaborator stores. Routing
// goes through domain.ResolveStat so there is exactly one table mapping the
// flat stat namespace onto the five destination domains.
type Router struct {
	collab Collaborators
}

// NewRouter creates a reward router over the given collaborators
func NewRouter(collab Collaborators) *Router {
	return &Router{collab: collab}
}

// ApplyBonuses applies each delta in order. An unrecognized stat is logged
// and skipped; a store failure is logged and the batch continues, so one bad
// delta can never block the rest. The aggregated store errors are returned
// for the caller to log.
func (r *Router) ApplyBonuses(ctx context.Context, playerID string, deltas []domain.StatDelta) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, delta := range deltas {
		target, ok := domain.ResolveStat(delta.StatID)
		if !ok {
			log.Warn(LogMsgUnknownStat, "stat_id", delta.StatID, "amount", delta.Amount)
			metrics.UnknownStatsSkipped.WithLabelValues(string(delta.StatID)).Inc()
			continue
		}

		var err error
		if target.Domain == domain.DomainSkill {
			err = r.applySkillDelta(ctx, playerID, delta.Amount)
		} else {
			err = r.applyFlatDelta(ctx, playerID, target, delta.Amount)
		}

		if err != nil {
			log.Error(LogMsgBonusApplyFailed, "stat_id", delta.StatID, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", delta.StatID, err))
			continue
		}
		metrics.StatBonusesApplied.WithLabelValues(string(delta.StatID)).Inc()
	}

	return errors.Join(errs...)
}

func (r *Router) applyFlatDelta(ctx context.Context, playerID string, target domain.StatTarget, amount float64) error {
	store, ok := r.collab.Stats[target.Domain]
	if !ok {
		return fmt.Errorf("no store wired for domain %s", target.Domain)
	}

	current, err := store.Get(ctx, playerID, target.Key)
	if err != nil {
		return err
	}
	return store.Set(ctx, playerID, target.Key, current+amount)
}

// applySkillDelta splits a martial arts bonus: the level rises by
// floor(amount/10) (the store caps it), while progress accumulates the raw
// amount uncapped.
func (r *Router) applySkillDelta(ctx context.Context, playerID string, amount float64) error {
	skill, err := r.collab.Skills.GetMartialArts(ctx, playerID)
	if err != nil {
		return err
	}

	skill.Level += int(math.Floor(amount / SkillLevelStep))
	skill.Progress += amount

	return r.collab.Skills.SetMartialArts(ctx, playerID, skill)
}
