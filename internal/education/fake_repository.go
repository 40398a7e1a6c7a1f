package education

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Education for testing. It deep-copies on both read and write
// like the postgres implementation, so aliasing bugs show up in tests.
type FakeRepository struct {
	mu     sync.Mutex
	states map[string]*domain.EducationState

	// Error injection
	GetErr  error
	SaveErr error
}

func NewFakeEducationRepository() *FakeRepository {
	return &FakeRepository{
		states: make(map[string]*domain.EducationState),
	}
}

func (f *FakeRepository) GetEducationState(ctx context.Context, playerID string) (*domain.EducationState, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.states[playerID]
	if !ok {
		return domain.NewEducationState(), nil
	}
	return cloneState(state), nil
}

func (f *FakeRepository) SaveEducationState(ctx context.Context, playerID string, state *domain.EducationState) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.states[playerID] = cloneState(state)
	return nil
}

func cloneState(state *domain.EducationState) *domain.EducationState {
	data, _ := json.Marshal(state)
	out := domain.NewEducationState()
	_ = json.Unmarshal(data, out)
	return out
}
