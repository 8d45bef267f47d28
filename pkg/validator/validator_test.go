package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectName(t *testing.T) {
	assert.NoError(t, ProjectName("Beach House"))
	assert.Error(t, ProjectName(""))
	assert.Error(t, ProjectName(strings.Repeat("a", maxProjectNameLen+1)))
}

func TestSpaceName(t *testing.T) {
	assert.NoError(t, SpaceName("Living Room"))
	assert.Error(t, SpaceName(""))
	assert.Error(t, SpaceName("bad\x00name"))
	assert.Error(t, SpaceName(strings.Repeat("a", maxSpaceNameLen+1)))
}

func TestCustomPrompt(t *testing.T) {
	assert.NoError(t, CustomPrompt(""))
	assert.NoError(t, CustomPrompt("keep the rug as it is"))
	assert.Error(t, CustomPrompt(strings.Repeat("a", maxCustomPromptLen+1)))
}

func TestImageMimeType(t *testing.T) {
	assert.NoError(t, ImageMimeType("image/png"))
	assert.NoError(t, ImageMimeType("image/webp"))
	assert.Error(t, ImageMimeType(""))
	assert.Error(t, ImageMimeType("application/pdf"))
}

func TestUploadFileName(t *testing.T) {
	assert.NoError(t, UploadFileName("room.png"))
	assert.Error(t, UploadFileName(""))
	assert.Error(t, UploadFileName("../room.png"))
	assert.Error(t, UploadFileName("a/b.png"))
	assert.Error(t, UploadFileName("a\\b.png"))
	assert.Error(t, UploadFileName("bad\x1fname.png"))
}
