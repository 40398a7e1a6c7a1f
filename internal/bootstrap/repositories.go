package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyonworks/QuarterLife_Go/internal/database/postgres"
	"github.com/halcyonworks/QuarterLife_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Player    repository.Player
	Education repository.Education
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:    postgres.NewPlayerRepository(dbPool),
		Education: postgres.NewEducationRepository(dbPool),
	}
}
