package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"readlater/internal/domain"
)

type ReconcileStateStore struct {
	db *sqlx.DB
}

func NewReconcileStateStore(db *sqlx.DB) *ReconcileStateStore {
	return &ReconcileStateStore{db: db}
}

// Get returns the persisted watermark for source. An unknown source gets a
// zero state, which makes the first reconciliation consume the whole inbox.
func (s *ReconcileStateStore) Get(ctx context.Context, source string) (*domain.ReconcileState, error) {
	exec := GetExecutor(ctx, s.db)

	var state domain.ReconcileState
	query := `
		SELECT source, watermark, processed, updated_at
		FROM reconcile_state
		WHERE source = $1`

	err := sqlx.GetContext(ctx, exec, &state, query, source)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.ReconcileState{
			Source:    source,
			Watermark: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reconcile state: %w", err)
	}

	return &state, nil
}

// Update persists the watermark. Called after every consumed inbox entry so
// a crash mid-batch never replays more than the entry in flight.
func (s *ReconcileStateStore) Update(ctx context.Context, state *domain.ReconcileState) error {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO reconcile_state (source, watermark, processed, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (source) DO UPDATE SET
			watermark = EXCLUDED.watermark,
			processed = EXCLUDED.processed,
			updated_at = now()`

	if _, err := exec.ExecContext(ctx, query,
		state.Source,
		state.Watermark,
		state.Processed,
	); err != nil {
		return fmt.Errorf("update reconcile state: %w", err)
	}

	return nil
}
