package prompt

import (
	"time"

	"design-service/internal/domain/task"

	"github.com/google/uuid"
)

// CustomPrompt is a user-saved reusable prompt, keyed by task kind and
// project.
type CustomPrompt struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProjectID uuid.UUID
	TaskName  task.Kind
	Text      string
	CreatedAt time.Time
}

type SaveCustomPromptInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	TaskName  task.Kind
	Text      string
}
