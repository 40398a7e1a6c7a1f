package repository

import (
	"context"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// Player defines the interface for player save data access
type Player interface {
	// GetPlayer returns the player save, or domain.ErrPlayerNotFound.
	GetPlayer(ctx context.Context, playerID string) (*domain.PlayerState, error)

	// SavePlayer upserts the full player save.
	SavePlayer(ctx context.Context, playerID string, state *domain.PlayerState) error

	// SpendMoney atomically debits the amount if the balance covers it.
	// Returns false without error when funds are insufficient.
	SpendMoney(ctx context.Context, playerID string, amount int64) (bool, error)

	// DepositMoney atomically credits the amount to an existing save.
	DepositMoney(ctx context.Context, playerID string, amount int64) error
}
