package genimage

import (
	"testing"

	"design-service/internal/domain/task"

	"github.com/stretchr/testify/assert"
)

func TestBuildRecolorPrompt(t *testing.T) {
	opts := task.Options{Color: &task.ColorSnapshot{Name: "Sage Green", Hex: "#8A9A5B"}}

	prompt := buildRecolorPrompt(opts, "")
	assert.Contains(t, prompt, `"Sage Green"`)
	assert.Contains(t, prompt, "#8A9A5B")
	assert.NotContains(t, prompt, "Additional instructions")
}

func TestBuildTexturePrompt_CustomPromptAppended(t *testing.T) {
	opts := task.Options{Texture: &task.TextureSnapshot{Name: "Oak Veneer", Material: "wood"}}

	prompt := buildTexturePrompt(opts, "  only the floor  ")
	assert.Contains(t, prompt, `"Oak Veneer"`)
	assert.Contains(t, prompt, "Additional instructions: only the floor")
}

func TestBuildItemPrompt(t *testing.T) {
	opts := task.Options{Item: &task.ItemSnapshot{Name: "Reading Chair", Category: "armchair"}}

	prompt := buildItemPrompt(opts, "")
	assert.Contains(t, prompt, `"Reading Chair"`)
	assert.Contains(t, prompt, "armchair")
}
