package player

import (
	"context"
	"sync"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.Player
// for testing. It mirrors the atomic-debit semantics of the postgres
// implementation so service tests exercise the same contract.
type FakeRepository struct {
	mu    sync.Mutex
	saves map[string]*domain.PlayerState

	// Error injection
	GetErr     error
	SaveErr    error
	SpendErr   error
	DepositErr error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		saves: make(map[string]*domain.PlayerState),
	}
}

func (f *FakeRepository) GetPlayer(ctx context.Context, playerID string) (*domain.PlayerState, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.saves[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return state.Clone(), nil
}

func (f *FakeRepository) SavePlayer(ctx context.Context, playerID string, state *domain.PlayerState) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.saves[playerID] = state.Clone()
	return nil
}

func (f *FakeRepository) SpendMoney(ctx context.Context, playerID string, amount int64) (bool, error) {
	if f.SpendErr != nil {
		return false, f.SpendErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.saves[playerID]
	if !ok {
		return false, domain.ErrPlayerNotFound
	}
	if state.Money < amount {
		return false, nil
	}
	state.Money -= amount
	return true, nil
}

func (f *FakeRepository) DepositMoney(ctx context.Context, playerID string, amount int64) error {
	if f.DepositErr != nil {
		return f.DepositErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.saves[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	state.Money += amount
	return nil
}
