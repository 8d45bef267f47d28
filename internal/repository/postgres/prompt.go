package postgres

import (
	"context"

	"design-service/internal/domain/prompt"
	"design-service/internal/domain/task"
	apperrors "design-service/pkg/errors"

	"github.com/google/uuid"
)

type PromptRepository struct {
	db *DB
}

func NewPromptRepository(db *DB) *PromptRepository {
	return &PromptRepository{db: db}
}

func (r *PromptRepository) Save(ctx context.Context, input prompt.SaveCustomPromptInput) (*prompt.CustomPrompt, error) {
	query := `
		INSERT INTO custom_prompts (user_id, project_id, task_name, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, project_id, task_name, text, created_at
	`

	p := &prompt.CustomPrompt{}
	err := r.db.Pool.QueryRow(ctx, query, input.UserID, input.ProjectID, input.TaskName, input.Text).Scan(
		&p.ID, &p.UserID, &p.ProjectID, &p.TaskName, &p.Text, &p.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("this prompt is already saved")
		}
		return nil, errFailedSavePrompt(err)
	}

	return p, nil
}

func (r *PromptRepository) ListByProjectAndTask(ctx context.Context, userID, projectID uuid.UUID, taskName task.Kind) ([]*prompt.CustomPrompt, error) {
	query := `
		SELECT id, user_id, project_id, task_name, text, created_at
		FROM custom_prompts
		WHERE user_id = $1 AND project_id = $2 AND task_name = $3
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, userID, projectID, taskName)
	if err != nil {
		return nil, errFailedListPrompts(err)
	}
	defer rows.Close()

	var prompts []*prompt.CustomPrompt
	for rows.Next() {
		p := &prompt.CustomPrompt{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.ProjectID, &p.TaskName, &p.Text, &p.CreatedAt); err != nil {
			return nil, errFailedScanPrompt(err)
		}
		prompts = append(prompts, p)
	}

	return prompts, rows.Err()
}

func (r *PromptRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM custom_prompts WHERE id = $1 AND user_id = $2`

	result, err := r.db.Pool.Exec(ctx, query, id, userID)
	if err != nil {
		return errFailedDeletePrompt(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errPromptNotFound)
	}

	return nil
}
