package validator

import (
	"fmt"
	"strings"
)

const (
	maxProjectNameLen  = 255
	maxSpaceNameLen    = 255
	maxCustomPromptLen = 500
	asciiControlStart  = 32
	asciiDelete        = 127

	errProjectNameEmptyFmt       = "project name cannot be empty"
	errProjectNameMaxLengthFmt   = "project name must not exceed %d characters"
	errSpaceNameEmptyFmt         = "space name cannot be empty"
	errSpaceNameMaxLengthFmt     = "space name must not exceed %d characters"
	errSpaceNameControlCharsFmt  = "space name cannot contain control characters"
	errCustomPromptMaxLengthFmt  = "custom prompt must not exceed %d characters"
	errMimeTypeEmptyFmt          = "mime type cannot be empty"
	errMimeTypeNotImageFmt       = "mime type must be an image type"
	errUploadNameEmptyFmt        = "file name cannot be empty"
	errUploadNamePathSepFmt      = "file name cannot contain path separators"
	errUploadNameControlCharsFmt = "file name cannot contain control characters"
)

func ProjectName(name string) error {
	if name == "" {
		return fmt.Errorf(errProjectNameEmptyFmt)
	}

	if len(name) > maxProjectNameLen {
		return fmt.Errorf(errProjectNameMaxLengthFmt, maxProjectNameLen)
	}

	return nil
}

func SpaceName(name string) error {
	if name == "" {
		return fmt.Errorf(errSpaceNameEmptyFmt)
	}

	if len(name) > maxSpaceNameLen {
		return fmt.Errorf(errSpaceNameMaxLengthFmt, maxSpaceNameLen)
	}

	for _, char := range name {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errSpaceNameControlCharsFmt)
		}
	}

	return nil
}

// CustomPrompt allows an empty prompt; free text is optional everywhere it
// appears.
func CustomPrompt(text string) error {
	if len(text) > maxCustomPromptLen {
		return fmt.Errorf(errCustomPromptMaxLengthFmt, maxCustomPromptLen)
	}

	return nil
}

func ImageMimeType(mimeType string) error {
	if mimeType == "" {
		return fmt.Errorf(errMimeTypeEmptyFmt)
	}

	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Errorf(errMimeTypeNotImageFmt)
	}

	return nil
}

func UploadFileName(name string) error {
	if name == "" {
		return fmt.Errorf(errUploadNameEmptyFmt)
	}

	if strings.Contains(name, "..") || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf(errUploadNamePathSepFmt)
	}

	for _, char := range name {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errUploadNameControlCharsFmt)
		}
	}

	return nil
}
