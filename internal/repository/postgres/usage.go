package postgres

import (
	"context"

	"design-service/internal/domain/task"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UsageRepository tracks per-user generation counts. Increments are
// best-effort: the caller fires them after a successful generation and only
// logs failures.
type UsageRepository struct {
	db *DB
}

func NewUsageRepository(db *DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) Increment(ctx context.Context, userID uuid.UUID, taskName task.Kind) error {
	query := `
		INSERT INTO usage_counters (user_id, task_name, count, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (user_id, task_name)
		DO UPDATE SET count = usage_counters.count + 1, updated_at = NOW()
	`

	if _, err := r.db.Pool.Exec(ctx, query, userID, taskName); err != nil {
		return errFailedIncrementUsage(err)
	}

	return nil
}

func (r *UsageRepository) Get(ctx context.Context, userID uuid.UUID, taskName task.Kind) (int64, error) {
	query := `SELECT count FROM usage_counters WHERE user_id = $1 AND task_name = $2`

	var count int64
	err := r.db.Pool.QueryRow(ctx, query, userID, taskName).Scan(&count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, errFailedGetUsage(err)
	}

	return count, nil
}
