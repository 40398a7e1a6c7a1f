package player

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/event"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
	"github.com/halcyonworks/QuarterLife_Go/internal/repository"
)

// Service defines the interface for player state operations. It owns the
// funds, attribute, core-stat, reputation, security and skill stores that
// other subsystems reach through narrow views.
type Service interface {
	// GetState returns the player save, creating a fresh one for a new player.
	GetState(ctx context.Context, playerID string) (*domain.PlayerState, error)

	// NewGame discards any existing save and starts from initial state.
	NewGame(ctx context.Context, playerID string) (*domain.PlayerState, error)

	// Balance returns the current money balance.
	Balance(ctx context.Context, playerID string) (int64, error)

	// Spend debits the amount if the balance covers it. A false result is
	// authoritative: the caller must treat it as final, no retry.
	Spend(ctx context.Context, playerID string, amount int64) (bool, error)

	// Deposit credits the amount. Used for income and for compensating a
	// debit whose follow-up work failed.
	Deposit(ctx context.Context, playerID string, amount int64) error

	// StatView returns a read/write view over one flat stat domain.
	// The skill domain is not served here; use GetMartialArts/SetMartialArts.
	StatView(statDomain domain.StatDomain) StatView

	// GetMartialArts returns the leveled martial arts skill.
	GetMartialArts(ctx context.Context, playerID string) (domain.LeveledSkill, error)

	// SetMartialArts stores the skill, capping the level at domain.MaxSkillLevel.
	SetMartialArts(ctx context.Context, playerID string, skill domain.LeveledSkill) error
}

// StatView is a narrow read/write view over one stat domain. Values are
// clamped by the view on write: [0,100] for attributes, core stats and
// reputation; floored at 0 with no upper bound for security.
type StatView interface {
	Get(ctx context.Context, playerID, key string) (float64, error)
	Set(ctx context.Context, playerID, key string, value float64) error
}

// service implements the Service interface
type service struct {
	repo      repository.Player
	publisher event.Bus
	cache     *playerCache

	// Serializes load-mutate-save cycles on stat and skill writes.
	mu sync.Mutex
}

// NewService creates a new player service
func NewService(repo repository.Player, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		cache:     newPlayerCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// GetState returns the player save, creating a fresh one for a new player.
func (s *service) GetState(ctx context.Context, playerID string) (*domain.PlayerState, error) {
	if state, ok := s.cache.Get(playerID); ok {
		return state, nil
	}

	state, err := s.repo.GetPlayer(ctx, playerID)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return s.createFreshSave(ctx, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}

	s.cache.Set(playerID, state)
	return state, nil
}

func (s *service) createFreshSave(ctx context.Context, playerID string) (*domain.PlayerState, error) {
	state := domain.NewPlayerState()
	if err := s.repo.SavePlayer(ctx, playerID, state); err != nil {
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	s.cache.Set(playerID, state)
	return state, nil
}

// NewGame discards any existing save and starts from initial state.
func (s *service) NewGame(ctx context.Context, playerID string) (*domain.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	state := domain.NewPlayerState()
	if err := s.repo.SavePlayer(ctx, playerID, state); err != nil {
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	s.cache.Set(playerID, state)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewGameEvent(playerID)); err != nil {
			log.Warn("Failed to publish new game event", "error", err)
		}
	}

	log.Info(LogMsgNewGameStarted, "player_id", playerID)
	return state.Clone(), nil
}

// Balance returns the current money balance.
func (s *service) Balance(ctx context.Context, playerID string) (int64, error) {
	state, err := s.GetState(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return state.Money, nil
}

// Spend debits the amount if the balance covers it.
func (s *service) Spend(ctx context.Context, playerID string, amount int64) (bool, error) {
	if amount < 0 {
		return false, errors.New(ErrMsgNegativeAmount)
	}
	if amount == 0 {
		return true, nil
	}

	// Ensure the save exists so the debit has a row to hit.
	if _, err := s.GetState(ctx, playerID); err != nil {
		return false, err
	}

	ok, err := s.repo.SpendMoney(ctx, playerID, amount)
	if err != nil {
		return false, fmt.Errorf(ErrMsgSpendFailed, err)
	}
	if !ok {
		return false, nil
	}

	s.cache.Invalidate(playerID)
	logger.FromContext(ctx).Info(LogMsgMoneySpent, "player_id", playerID, "amount", amount)
	return true, nil
}

// Deposit credits the amount.
func (s *service) Deposit(ctx context.Context, playerID string, amount int64) error {
	if amount < 0 {
		return errors.New(ErrMsgNegativeAmount)
	}
	if amount == 0 {
		return nil
	}

	// Ensure the save exists so the credit has a row to hit.
	if _, err := s.GetState(ctx, playerID); err != nil {
		return err
	}

	if err := s.repo.DepositMoney(ctx, playerID, amount); err != nil {
		return fmt.Errorf(ErrMsgDepositFailed, err)
	}

	s.cache.Invalidate(playerID)
	logger.FromContext(ctx).Info(LogMsgMoneyDeposited, "player_id", playerID, "amount", amount)
	return nil
}

// StatView returns a read/write view over one flat stat domain.
func (s *service) StatView(statDomain domain.StatDomain) StatView {
	return &statView{svc: s, statDomain: statDomain}
}

// GetMartialArts returns the leveled martial arts skill.
func (s *service) GetMartialArts(ctx context.Context, playerID string) (domain.LeveledSkill, error) {
	state, err := s.GetState(ctx, playerID)
	if err != nil {
		return domain.LeveledSkill{}, err
	}
	return state.Skills[domain.SkillMartialArts], nil
}

// SetMartialArts stores the skill, capping the level at domain.MaxSkillLevel.
func (s *service) SetMartialArts(ctx context.Context, playerID string, skill domain.LeveledSkill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skill.Level > domain.MaxSkillLevel {
		skill.Level = domain.MaxSkillLevel
	}
	if skill.Level < 0 {
		skill.Level = 0
	}

	state, err := s.GetState(ctx, playerID)
	if err != nil {
		return err
	}

	state.Skills[domain.SkillMartialArts] = skill
	if err := s.repo.SavePlayer(ctx, playerID, state); err != nil {
		return fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	s.cache.Set(playerID, state)

	logger.FromContext(ctx).Debug(LogMsgSkillUpdated,
		"player_id", playerID, "level", skill.Level, "progress", skill.Progress)
	return nil
}

// statView adapts the service to one stat domain with that domain's clamps.
type statView struct {
	svc        *service
	statDomain domain.StatDomain
}

func (v *statView) Get(ctx context.Context, playerID, key string) (float64, error) {
	state, err := v.svc.GetState(ctx, playerID)
	if err != nil {
		return 0, err
	}

	values := statMapFor(state, v.statDomain)
	if values == nil {
		return 0, fmt.Errorf("%s: %s", ErrMsgUnknownStatKey, v.statDomain)
	}
	return values[key], nil
}

func (v *statView) Set(ctx context.Context, playerID, key string, value float64) error {
	v.svc.mu.Lock()
	defer v.svc.mu.Unlock()

	state, err := v.svc.GetState(ctx, playerID)
	if err != nil {
		return err
	}

	values := statMapFor(state, v.statDomain)
	if values == nil {
		return fmt.Errorf("%s: %s", ErrMsgUnknownStatKey, v.statDomain)
	}

	values[key] = clampStat(v.statDomain, value)
	if err := v.svc.repo.SavePlayer(ctx, playerID, state); err != nil {
		return fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}
	v.svc.cache.Set(playerID, state)

	logger.FromContext(ctx).Debug(LogMsgStatUpdated,
		"player_id", playerID, "domain", v.statDomain, "key", key, "value", values[key])
	return nil
}

func statMapFor(state *domain.PlayerState, statDomain domain.StatDomain) map[string]float64 {
	switch statDomain {
	case domain.DomainAttributes:
		return state.Attributes
	case domain.DomainCoreStats:
		return state.CoreStats
	case domain.DomainReputation:
		return state.Reputation
	case domain.DomainSecurity:
		return state.Security
	default:
		return nil
	}
}

// clampStat applies the owning domain's bounds. Security stats have a floor
// but no ceiling; everything else lives in [0, 100].
func clampStat(statDomain domain.StatDomain, value float64) float64 {
	if value < domain.StatFloor {
		return domain.StatFloor
	}
	if statDomain != domain.DomainSecurity && value > domain.StatCeiling {
		return domain.StatCeiling
	}
	return value
}
