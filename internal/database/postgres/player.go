package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// PlayerSaveSchemaVersion is the current player save format. Bump on any
// schema-breaking change to the state blob.
const PlayerSaveSchemaVersion = 1

// PlayerRepository implements the player repository for PostgreSQL.
// Money lives in its own column so debits can be a single atomic UPDATE;
// everything else is a versioned JSONB blob.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// playerStateBlob is the JSONB portion of a player save. Money is excluded;
// the money column is authoritative.
type playerStateBlob struct {
	Attributes map[string]float64             `json:"attributes"`
	CoreStats  map[string]float64             `json:"core_stats"`
	Reputation map[string]float64             `json:"reputation"`
	Security   map[string]float64             `json:"security"`
	Skills     map[string]domain.LeveledSkill `json:"skills"`
}

// GetPlayer returns the player save, or domain.ErrPlayerNotFound
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.PlayerState, error) {
	query := `
		SELECT money, state
		FROM player_saves
		WHERE user_id = $1
	`

	var money int64
	var stateData []byte
	err := r.db.QueryRow(ctx, query, playerID).Scan(&money, &stateData)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayerSave, err)
	}

	var blob playerStateBlob
	if err := json.Unmarshal(stateData, &blob); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParsePlayerSave, err)
	}

	return &domain.PlayerState{
		Money:      money,
		Attributes: blob.Attributes,
		CoreStats:  blob.CoreStats,
		Reputation: blob.Reputation,
		Security:   blob.Security,
		Skills:     blob.Skills,
	}, nil
}

// SavePlayer upserts the full player save
func (r *PlayerRepository) SavePlayer(ctx context.Context, playerID string, state *domain.PlayerState) error {
	blob := playerStateBlob{
		Attributes: state.Attributes,
		CoreStats:  state.CoreStats,
		Reputation: state.Reputation,
		Security:   state.Security,
		Skills:     state.Skills,
	}
	stateData, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodePlayerSave, err)
	}

	query := `
		INSERT INTO player_saves (user_id, money, state, schema_version, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET money = EXCLUDED.money,
		    state = EXCLUDED.state,
		    schema_version = EXCLUDED.schema_version,
		    updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, playerID, state.Money, stateData, PlayerSaveSchemaVersion); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePlayerSave, err)
	}
	return nil
}

// SpendMoney atomically debits the amount if the balance covers it. The
// guard lives in the WHERE clause so two concurrent debits can never take
// the balance negative.
func (r *PlayerRepository) SpendMoney(ctx context.Context, playerID string, amount int64) (bool, error) {
	query := `
		UPDATE player_saves
		SET money = money - $2, updated_at = NOW()
		WHERE user_id = $1 AND money >= $2
	`

	tag, err := r.db.Exec(ctx, query, playerID, amount)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToSpendMoney, err)
	}
	return tag.RowsAffected() == 1, nil
}

// DepositMoney atomically credits the amount to an existing save.
func (r *PlayerRepository) DepositMoney(ctx context.Context, playerID string, amount int64) error {
	query := `
		UPDATE player_saves
		SET money = money + $2, updated_at = NOW()
		WHERE user_id = $1
	`

	tag, err := r.db.Exec(ctx, query, playerID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDepositMoney, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
