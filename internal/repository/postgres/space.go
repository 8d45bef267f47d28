package postgres

import (
	"context"
	"fmt"

	"design-service/internal/domain/space"
	apperrors "design-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SpaceRepository struct {
	db *DB
}

func NewSpaceRepository(db *DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

func (r *SpaceRepository) Create(ctx context.Context, input space.CreateSpaceInput) (*space.Space, error) {
	query := `
		INSERT INTO spaces (project_id, name, room_type)
		VALUES ($1, $2, $3)
		RETURNING id, project_id, name, room_type, created_at, updated_at
	`

	sp := &space.Space{}
	err := r.db.Pool.QueryRow(ctx, query, input.ProjectID, input.Name, input.RoomType).Scan(
		&sp.ID, &sp.ProjectID, &sp.Name, &sp.RoomType, &sp.CreatedAt, &sp.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("space with this name already exists in the project")
		}
		return nil, errFailedCreateSpace(err)
	}

	return sp, nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*space.Space, error) {
	query := `
		SELECT id, project_id, name, room_type, created_at, updated_at
		FROM spaces WHERE id = $1
	`

	sp := &space.Space{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&sp.ID, &sp.ProjectID, &sp.Name, &sp.RoomType, &sp.CreatedAt, &sp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errSpaceNotFound)
		}
		return nil, errFailedGetSpace(err)
	}

	return sp, nil
}

func (r *SpaceRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*space.Space, error) {
	query := `
		SELECT id, project_id, name, room_type, created_at, updated_at
		FROM spaces WHERE project_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errFailedListSpaces(err)
	}
	defer rows.Close()

	var spaces []*space.Space
	for rows.Next() {
		sp := &space.Space{}
		if err := rows.Scan(&sp.ID, &sp.ProjectID, &sp.Name, &sp.RoomType, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, errFailedScanSpace(err)
		}
		spaces = append(spaces, sp)
	}

	return spaces, rows.Err()
}

func (r *SpaceRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM spaces WHERE project_id = $1`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, projectID).Scan(&count); err != nil {
		return 0, errFailedCountSpaces(err)
	}

	return count, nil
}

func (r *SpaceRepository) Update(ctx context.Context, id uuid.UUID, input space.UpdateSpaceInput) error {
	query := "UPDATE spaces SET updated_at = NOW()"
	args := []interface{}{id}
	argCount := 1

	if input.Name != nil {
		argCount++
		query += fmt.Sprintf(", name = $%d", argCount)
		args = append(args, *input.Name)
	}

	if input.RoomType != nil {
		argCount++
		query += fmt.Sprintf(", room_type = $%d", argCount)
		args = append(args, *input.RoomType)
	}

	query += " WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return errFailedUpdateSpace(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errSpaceNotFound)
	}

	return nil
}

func (r *SpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM spaces WHERE id = $1"
	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeleteSpace(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errSpaceNotFound)
	}

	return nil
}
