// Package naming builds the final display name for a saved image from the
// user's naming preferences: an optional timestamp prefix, the base name, an
// optional color/texture suffix, and an optional extension derived from the
// mime type.
package naming

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxBaseNameLen = 50

	timestampLayout = "20060102_150405"
	partSeparator   = "_"

	errBaseNameEmptyFmt     = "name cannot be empty"
	errBaseNameMaxLengthFmt = "name must not exceed %d characters"
)

// Parts describes which name components are enabled and their values.
type Parts struct {
	Base          string
	WithTimestamp bool
	// Suffix is the selected color or texture name; empty means disabled.
	Suffix        string
	WithExtension bool
	MimeType      string
}

// Build concatenates the enabled parts in the fixed order timestamp, base,
// suffix, extension. The result is deterministic for a given now.
func Build(p Parts, now time.Time) string {
	parts := make([]string, 0, 3)

	if p.WithTimestamp {
		parts = append(parts, now.Format(timestampLayout))
	}

	parts = append(parts, strings.TrimSpace(p.Base))

	if p.Suffix != "" {
		parts = append(parts, p.Suffix)
	}

	name := strings.Join(parts, partSeparator)

	if p.WithExtension {
		name += extensionForMimeType(p.MimeType)
	}

	return name
}

// ValidateBaseName rejects an empty trimmed base name and names longer than
// MaxBaseNameLen characters.
func ValidateBaseName(base string) error {
	if strings.TrimSpace(base) == "" {
		return fmt.Errorf(errBaseNameEmptyFmt)
	}

	if utf8.RuneCountInString(base) > MaxBaseNameLen {
		return fmt.Errorf(errBaseNameMaxLengthFmt, MaxBaseNameLen)
	}

	return nil
}

func extensionForMimeType(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		// Fall back to the mime subtype when it looks like an extension.
		if idx := strings.Index(mimeType, "/"); idx >= 0 && idx+1 < len(mimeType) {
			return "." + mimeType[idx+1:]
		}
		return ""
	}
}
