package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"design-service/internal/domain/image"
	apperrors "design-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ImageRepository struct {
	db *DB
}

func NewImageRepository(db *DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, input image.CreateImageInput) (*image.Image, error) {
	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	operations, err := json.Marshal(input.Operations)
	if err != nil {
		return nil, errFailedEncodeOperations(err)
	}

	query := `
		INSERT INTO images (id, space_id, project_id, owner_id, name, mime_type, s3_key, operations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, space_id, project_id, owner_id, name, mime_type, s3_key, operations, deleted, created_at, updated_at
	`

	row := r.db.Pool.QueryRow(ctx, query,
		id, input.SpaceID, input.ProjectID, input.OwnerID,
		input.Name, input.MimeType, input.StorageKey, operations,
	)

	img, err := scanImage(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("image already exists")
		}
		return nil, errFailedCreateImage(err)
	}

	return img, nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*image.Image, error) {
	query := `
		SELECT id, space_id, project_id, owner_id, name, mime_type, s3_key, operations, deleted, created_at, updated_at
		FROM images WHERE id = $1
	`

	img, err := scanImage(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errImageNotFound)
		}
		return nil, errFailedGetImage(err)
	}

	return img, nil
}

func (r *ImageRepository) List(ctx context.Context, filter image.ListImagesFilter) ([]*image.Image, error) {
	query := `
		SELECT id, space_id, project_id, owner_id, name, mime_type, s3_key, operations, deleted, created_at, updated_at
		FROM images WHERE space_id = $1
	`
	args := []interface{}{filter.SpaceID}

	if !filter.IncludeDeleted {
		query += " AND deleted = FALSE"
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedListImages(err)
	}
	defer rows.Close()

	var images []*image.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, errFailedScanImage(err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// CountBySpace counts active (not soft-deleted) images, the number the image
// limit check compares against.
func (r *ImageRepository) CountBySpace(ctx context.Context, spaceID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM images WHERE space_id = $1 AND deleted = FALSE`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, spaceID).Scan(&count); err != nil {
		return 0, errFailedCountImages(err)
	}

	return count, nil
}

// SoftDelete flags an image as deleted without removing the row or the stored
// object.
func (r *ImageRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE images SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedSoftDeleteImage(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errImageNotFound)
	}

	return nil
}

// PurgeDeletedBefore hard-deletes rows soft-deleted before the cutoff and
// returns the freed objects so the caller can remove them from storage too.
func (r *ImageRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) ([]image.PurgedObject, error) {
	query := `
		DELETE FROM images
		WHERE deleted = TRUE AND updated_at < $1
		RETURNING s3_key, (SELECT s3_bucket_name FROM projects WHERE projects.id = images.project_id)
	`

	rows, err := r.db.Pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, errFailedPurgeImages(err)
	}
	defer rows.Close()

	var objects []image.PurgedObject
	for rows.Next() {
		var obj image.PurgedObject
		if err := rows.Scan(&obj.StorageKey, &obj.Bucket); err != nil {
			return nil, errFailedPurgeImages(err)
		}
		objects = append(objects, obj)
	}

	return objects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanImage(row rowScanner) (*image.Image, error) {
	img := &image.Image{}
	var operations []byte

	if err := row.Scan(
		&img.ID, &img.SpaceID, &img.ProjectID, &img.OwnerID,
		&img.Name, &img.MimeType, &img.StorageKey, &operations,
		&img.Deleted, &img.CreatedAt, &img.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(operations) > 0 {
		if err := json.Unmarshal(operations, &img.Operations); err != nil {
			return nil, errFailedDecodeOperations(err)
		}
	}

	return img, nil
}
