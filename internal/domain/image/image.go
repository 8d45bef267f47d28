package image

import (
	"time"

	"design-service/internal/domain/task"

	"github.com/google/uuid"
)

// Image is one picture in a space, together with its evolution chain: the
// ordered history of generative operations that produced it.
type Image struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	ProjectID   uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	MimeType    string
	StorageKey  string
	DownloadURL string
	Operations  []Operation
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Operation is one entry in an evolution chain. Entries are immutable once
// appended; the selection snapshots are copies, not references.
type Operation struct {
	TaskName      task.Kind             `json:"task_name"`
	CustomPrompt  string                `json:"custom_prompt,omitempty"`
	Color         *task.ColorSnapshot   `json:"color,omitempty"`
	Texture       *task.TextureSnapshot `json:"texture,omitempty"`
	Item          *task.ItemSnapshot    `json:"item,omitempty"`
	SourceImageID uuid.UUID             `json:"source_image_id"`
	AppliedAt     time.Time             `json:"applied_at"`
}

type CreateImageInput struct {
	ID         uuid.UUID
	SpaceID    uuid.UUID
	ProjectID  uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	MimeType   string
	StorageKey string
	Operations []Operation
}

// PurgedObject identifies a stored object freed when a soft-deleted image is
// finally purged.
type PurgedObject struct {
	Bucket     string
	StorageKey string
}

type ListImagesFilter struct {
	SpaceID        uuid.UUID
	IncludeDeleted bool
	Limit          int
	Offset         int
}
