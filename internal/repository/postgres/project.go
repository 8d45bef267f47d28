package postgres

import (
	"context"
	"fmt"

	"design-service/internal/domain/project"
	apperrors "design-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository struct {
	db *DB
}

func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, input project.CreateProjectInput) (*project.Project, error) {
	projectID := uuid.New()
	s3BucketName := fmt.Sprintf(
		"%s-%s",
		input.OwnerID.String()[:bucketNameIDSegmentLength],
		projectID.String()[:bucketNameIDSegmentLength],
	)

	query := `
		INSERT INTO projects (id, owner_id, name, s3_bucket_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_id, name, s3_bucket_name, created_at, updated_at
	`

	p := &project.Project{}
	err := r.db.Pool.QueryRow(ctx, query, projectID, input.OwnerID, input.Name, s3BucketName).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.S3BucketName, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("project with this name already exists")
		}
		return nil, errFailedCreateProject(err)
	}

	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `
		SELECT id, owner_id, name, s3_bucket_name, created_at, updated_at
		FROM projects WHERE id = $1
	`

	p := &project.Project{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.S3BucketName, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errProjectNotFound)
		}
		return nil, errFailedGetProject(err)
	}

	return p, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	query := `
		SELECT id, owner_id, name, s3_bucket_name, created_at, updated_at
		FROM projects WHERE owner_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, errFailedListProjects(err)
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		p := &project.Project{}
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.S3BucketName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, errFailedScanProject(err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM projects WHERE owner_id = $1`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, errFailedCountProjects(err)
	}

	return count, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) error {
	query := "UPDATE projects SET updated_at = NOW()"
	args := []interface{}{id}
	argCount := 1

	if input.Name != nil {
		argCount++
		query += fmt.Sprintf(", name = $%d", argCount)
		args = append(args, *input.Name)
	}

	query += " WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return errFailedUpdateProject(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errProjectNotFound)
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM projects WHERE id = $1"
	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeleteProject(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errProjectNotFound)
	}

	return nil
}
