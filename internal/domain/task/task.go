package task

import (
	"fmt"
)

// Kind identifies one of the generative operations the backend supports.
type Kind string

const (
	KindRecolor Kind = "recolor"
	KindTexture Kind = "texture"
	KindItem    Kind = "item"

	errInvalidKindFmt = "invalid task kind: %s"
)

func (k Kind) Validate() error {
	switch k {
	case KindRecolor, KindTexture, KindItem:
		return nil
	default:
		return fmt.Errorf(errInvalidKindFmt, k)
	}
}

// ColorSnapshot captures the color selection at the moment an operation is
// applied, so later catalog edits never rewrite history.
type ColorSnapshot struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type TextureSnapshot struct {
	Name      string `json:"name"`
	Material  string `json:"material"`
	SampleURL string `json:"sample_url,omitempty"`
}

type ItemSnapshot struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	ImageURL string `json:"image_url,omitempty"`
}

// Options carries the task-specific selection. Exactly the field matching the
// task kind must be set.
type Options struct {
	Color   *ColorSnapshot   `json:"color,omitempty"`
	Texture *TextureSnapshot `json:"texture,omitempty"`
	Item    *ItemSnapshot    `json:"item,omitempty"`
}

const (
	errColorRequired   = "a color selection is required for recolor"
	errTextureRequired = "a texture selection is required for texture"
	errItemRequired    = "an item selection is required for item placement"
)

// ValidateFor checks that the selection required by the task kind is present.
func (o Options) ValidateFor(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	switch kind {
	case KindRecolor:
		if o.Color == nil || o.Color.Name == "" {
			return fmt.Errorf(errColorRequired)
		}
	case KindTexture:
		if o.Texture == nil || o.Texture.Name == "" {
			return fmt.Errorf(errTextureRequired)
		}
	case KindItem:
		if o.Item == nil || o.Item.Name == "" {
			return fmt.Errorf(errItemRequired)
		}
	}

	return nil
}

// SuffixFor returns the name suffix contributed by the selection, a color or
// texture name. Item placement contributes no suffix.
func (o Options) SuffixFor(kind Kind) string {
	switch kind {
	case KindRecolor:
		if o.Color != nil {
			return o.Color.Name
		}
	case KindTexture:
		if o.Texture != nil {
			return o.Texture.Name
		}
	}
	return ""
}
