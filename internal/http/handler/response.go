package handler

import (
	"errors"
	"net/http"

	apperrors "design-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}

func handleHTTPError(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		return respondError(c, he.Code, msg)
	}

	return respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// respondServiceError maps sentinel errors from the service layer to HTTP
// status codes. Internal errors are logged and sanitized.
func respondServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrLimitReached):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrQuotaExhausted):
		status = http.StatusTooManyRequests
	case errors.Is(err, apperrors.ErrGeneration):
		status = http.StatusBadGateway
	}

	message := http.StatusText(status)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		// Generation failures carry a user-facing message even though they
		// map to a 5xx status.
		if status < http.StatusInternalServerError || errors.Is(err, apperrors.ErrGeneration) {
			message = appErr.Message
		}
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("internal error: %v", err)
	}

	return respondError(c, status, message)
}
