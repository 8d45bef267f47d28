package genimage

import (
	"fmt"
	"strings"

	"design-service/internal/domain/task"
)

const (
	recolorPromptFmt = "Repaint the dominant wall surface in this interior photo " +
		"with the color %q%s. Keep lighting, shadows, furniture, and all other " +
		"surfaces unchanged. Return only the edited photo."

	texturePromptFmt = "Re-render the dominant surface in this interior photo " +
		"with the texture %q%s. Preserve the room geometry, lighting, and every " +
		"other object exactly as in the original. Return only the edited photo."

	itemPromptFmt = "Place the item %q%s into this interior photo in a natural " +
		"position, matching the room's perspective, scale, and lighting. Do not " +
		"alter anything else in the scene. Return only the edited photo."
)

func buildRecolorPrompt(opts task.Options, custom string) string {
	detail := ""
	if opts.Color.Hex != "" {
		detail = fmt.Sprintf(" (hex %s)", opts.Color.Hex)
	}
	return withCustomPrompt(fmt.Sprintf(recolorPromptFmt, opts.Color.Name, detail), custom)
}

func buildTexturePrompt(opts task.Options, custom string) string {
	detail := ""
	if opts.Texture.Material != "" {
		detail = fmt.Sprintf(" (%s)", opts.Texture.Material)
	}
	return withCustomPrompt(fmt.Sprintf(texturePromptFmt, opts.Texture.Name, detail), custom)
}

func buildItemPrompt(opts task.Options, custom string) string {
	detail := ""
	if opts.Item.Category != "" {
		detail = fmt.Sprintf(" (%s)", opts.Item.Category)
	}
	return withCustomPrompt(fmt.Sprintf(itemPromptFmt, opts.Item.Name, detail), custom)
}

func withCustomPrompt(base, custom string) string {
	custom = strings.TrimSpace(custom)
	if custom == "" {
		return base
	}
	return base + " Additional instructions: " + custom
}
