package repository

import (
	"context"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// Education defines the interface for education save data access
type Education interface {
	// GetEducationState returns the persisted enrollment state. A player
	// with no saved state gets a fresh empty state, not an error.
	GetEducationState(ctx context.Context, playerID string) (*domain.EducationState, error)

	// SaveEducationState upserts the full enrollment state.
	SaveEducationState(ctx context.Context, playerID string, state *domain.EducationState) error
}
