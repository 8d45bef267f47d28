package genimage

import (
	"encoding/json"
	"strings"

	apperrors "design-service/pkg/errors"
)

const (
	msgQuotaExhausted = "you have used up your generation quota for now, please try again later"
	msgModelNotFound  = "the image model is currently unavailable"
	msgGenericFailure = "image generation failed, please try again"
)

// backendErrorBody matches the JSON error blob the backend SDK embeds in its
// error messages.
type backendErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// classifyBackendError converts a backend SDK error into one of the service's
// sentinel errors. Classification happens exactly once, here; everything above
// this boundary works with errors.Is instead of message matching.
func classifyBackendError(err error) error {
	msg := err.Error()

	if body, ok := extractErrorBody(msg); ok {
		switch body.Error.Status {
		case "RESOURCE_EXHAUSTED":
			return apperrors.QuotaExhausted(msgQuotaExhausted)
		case "NOT_FOUND":
			return apperrors.NotFound(msgModelNotFound)
		}
		switch body.Error.Code {
		case 429:
			return apperrors.QuotaExhausted(msgQuotaExhausted)
		case 404:
			return apperrors.NotFound(msgModelNotFound)
		}
	}

	// The SDK does not always embed a structured body; fall back to the known
	// message signatures.
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"), strings.Contains(lower, "quota"), strings.Contains(lower, "rate limit"):
		return apperrors.QuotaExhausted(msgQuotaExhausted)
	case strings.Contains(msg, "NOT_FOUND"), strings.Contains(lower, "not found"):
		return apperrors.NotFound(msgModelNotFound)
	}

	return apperrors.Generation(msgGenericFailure, err)
}

// extractErrorBody pulls the first JSON object out of an error message.
func extractErrorBody(msg string) (backendErrorBody, bool) {
	start := strings.Index(msg, "{")
	end := strings.LastIndex(msg, "}")
	if start < 0 || end <= start {
		return backendErrorBody{}, false
	}

	var body backendErrorBody
	if err := json.Unmarshal([]byte(msg[start:end+1]), &body); err != nil {
		return backendErrorBody{}, false
	}

	if body.Error.Status == "" && body.Error.Code == 0 {
		return backendErrorBody{}, false
	}

	return body, true
}
