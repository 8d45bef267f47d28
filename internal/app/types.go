package app

import (
	"context"
	"time"

	"design-service/internal/domain/image"
	"design-service/internal/domain/project"
	"design-service/internal/domain/prompt"
	"design-service/internal/domain/space"
	"design-service/internal/domain/task"
	"design-service/internal/genimage"

	"github.com/google/uuid"
)

// Repository and infrastructure contracts the service orchestrates. The
// concrete implementations live in internal/repository/postgres,
// internal/storage/s3, and internal/genimage.

type ProjectRepository interface {
	Create(ctx context.Context, input project.CreateProjectInput) (*project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SpaceRepository interface {
	Create(ctx context.Context, input space.CreateSpaceInput) (*space.Space, error)
	GetByID(ctx context.Context, id uuid.UUID) (*space.Space, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*space.Space, error)
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, input space.UpdateSpaceInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ImageRepository interface {
	Create(ctx context.Context, input image.CreateImageInput) (*image.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*image.Image, error)
	List(ctx context.Context, filter image.ListImagesFilter) ([]*image.Image, error)
	CountBySpace(ctx context.Context, spaceID uuid.UUID) (int, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) ([]image.PurgedObject, error)
}

type PromptRepository interface {
	Save(ctx context.Context, input prompt.SaveCustomPromptInput) (*prompt.CustomPrompt, error)
	ListByProjectAndTask(ctx context.Context, userID, projectID uuid.UUID, taskName task.Kind) ([]*prompt.CustomPrompt, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type UsageRepository interface {
	Increment(ctx context.Context, userID uuid.UUID, taskName task.Kind) error
	Get(ctx context.Context, userID uuid.UUID, taskName task.Kind) (int64, error)
}

type ObjectStorage interface {
	UploadObject(ctx context.Context, bucketName, objectKey string, data []byte, contentType string) error
	DownloadObject(ctx context.Context, bucketName, objectKey string) ([]byte, error)
	GeneratePresignedDownloadURL(ctx context.Context, bucketName, objectKey string) (string, error)
	DeleteObject(ctx context.Context, bucketName, objectKey string) error
	CreateBucket(ctx context.Context, bucketName, region string) error
	DeleteBucket(ctx context.Context, bucketName string) error
}

type Generator interface {
	Generate(ctx context.Context, kind task.Kind, req genimage.Request) (*genimage.Result, error)
}

// UploadImageRequest is an initial photo upload into a space.
type UploadImageRequest struct {
	UserID   uuid.UUID
	SpaceID  uuid.UUID
	Name     string
	MimeType string
	Data     []byte
}

// GenerateImageRequest runs one generative task against a source image and
// returns a preview; nothing is persisted.
type GenerateImageRequest struct {
	UserID        uuid.UUID
	SourceImageID uuid.UUID
	TaskName      task.Kind
	Options       task.Options
	CustomPrompt  string
}

// GenerateImageResponse carries the preview payload back to the client.
type GenerateImageResponse struct {
	Payload  string `json:"payload"` // base64-encoded
	MimeType string `json:"mime_type"`
}

// ConfirmImageRequest saves a previewed generation as a new image. NamePrefs
// mirrors the confirmation dialog's naming toggles.
type ConfirmImageRequest struct {
	UserID           uuid.UUID
	SourceImageID    uuid.UUID
	TaskName         task.Kind
	Options          task.Options
	CustomPrompt     string
	SaveCustomPrompt bool
	Payload          string // base64-encoded generated image
	MimeType         string
	NamePrefs        NamePrefs
}

type NamePrefs struct {
	BaseName      string `json:"base_name"`
	WithTimestamp bool   `json:"with_timestamp"`
	WithSuffix    bool   `json:"with_suffix"`
	WithExtension bool   `json:"with_extension"`
}
