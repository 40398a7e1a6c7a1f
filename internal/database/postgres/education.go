package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
)

// Education save schema versions. Version 1 stored progress as elapsed tick
// counts in [0, durationTicks]; version 2 stores canonical percent progress
// in [0, 100]. Version 1 rows are translated once at load time and written
// back as version 2 on the next save.
const (
	EducationSaveSchemaVersion       = 2
	educationSaveSchemaVersionLegacy = 1
)

// EducationRepository implements the education repository for PostgreSQL.
// The whole enrollment state is one versioned JSONB blob per player.
type EducationRepository struct {
	db *pgxpool.Pool
}

// NewEducationRepository creates a new EducationRepository
func NewEducationRepository(db *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{db: db}
}

// GetEducationState returns the persisted enrollment state. A player with
// no saved row gets a fresh empty state.
func (r *EducationRepository) GetEducationState(ctx context.Context, playerID string) (*domain.EducationState, error) {
	query := `
		SELECT state, schema_version
		FROM education_saves
		WHERE user_id = $1
	`

	var stateData []byte
	var schemaVersion int
	err := r.db.QueryRow(ctx, query, playerID).Scan(&stateData, &schemaVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewEducationState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEducationSave, err)
	}

	state := domain.NewEducationState()
	if err := json.Unmarshal(stateData, state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseEducationSave, err)
	}
	if state.CompletedProgramIDs == nil {
		state.CompletedProgramIDs = []string{}
	}

	if schemaVersion == educationSaveSchemaVersionLegacy {
		migrateLegacyTickProgress(ctx, playerID, state)
	}

	return state, nil
}

// SaveEducationState upserts the full enrollment state
func (r *EducationRepository) SaveEducationState(ctx context.Context, playerID string, state *domain.EducationState) error {
	stateData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEducationSave, err)
	}

	query := `
		INSERT INTO education_saves (user_id, state, schema_version, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET state = EXCLUDED.state,
		    schema_version = EXCLUDED.schema_version,
		    updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, playerID, stateData, EducationSaveSchemaVersion); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveEducationSave, err)
	}
	return nil
}

// migrateLegacyTickProgress converts tick-count progress into percent.
// A legacy value of k elapsed ticks on an N-tick program becomes k * 100/N.
func migrateLegacyTickProgress(ctx context.Context, playerID string, state *domain.EducationState) {
	log := logger.FromContext(ctx)

	for _, track := range []domain.Track{domain.TrackAcademic, domain.TrackCertificate} {
		enrollment := state.TrackEnrollment(track)
		if enrollment == nil {
			continue
		}

		percent := enrollment.Progress * enrollment.Program.TickIncrement()
		if percent > 100 {
			percent = 100
		}
		enrollment.Progress = percent
		enrollment.RecalcPeriod()

		log.Info(LogMsgMigratedLegacyEducationSave,
			"player_id", playerID, "track", track, "progress_percent", percent)
	}
}
