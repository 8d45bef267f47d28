package space

import (
	"time"

	"github.com/google/uuid"
)

// Space is a room within a project; images live inside a space.
type Space struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	RoomType  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateSpaceInput struct {
	ProjectID uuid.UUID
	Name      string
	RoomType  string
}

type UpdateSpaceInput struct {
	Name     *string
	RoomType *string
}
