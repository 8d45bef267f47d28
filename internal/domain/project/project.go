package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	S3BucketName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateProjectInput struct {
	OwnerID uuid.UUID
	Name    string
}

type UpdateProjectInput struct {
	Name *string
}
