package handler

import (
	"net/http"
	"strings"

	"design-service/internal/app"
	"design-service/internal/auth"
	"design-service/internal/domain/prompt"
	"design-service/internal/domain/task"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PromptHandler struct {
	service *app.Service
}

func NewPromptHandler(service *app.Service) *PromptHandler {
	return &PromptHandler{service: service}
}

type SavePromptRequest struct {
	TaskName task.Kind `json:"task_name"`
	Text     string    `json:"text"`
}

func (h *PromptHandler) SavePrompt(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramProjectID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	var req SavePromptRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}
	req.Text = strings.TrimSpace(req.Text)

	saved, err := h.service.SaveCustomPrompt(c.Request().Context(), prompt.SaveCustomPromptInput{
		UserID:    userID,
		ProjectID: projectID,
		TaskName:  req.TaskName,
		Text:      req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, saved)
}

func (h *PromptHandler) ListPrompts(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramProjectID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	taskName := task.Kind(c.QueryParam(queryTaskName))

	prompts, err := h.service.ListCustomPrompts(c.Request().Context(), userID, projectID, taskName)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, prompts)
}

func (h *PromptHandler) DeletePrompt(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	promptID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidPromptID)
	}

	if err := h.service.DeleteCustomPrompt(c.Request().Context(), userID, promptID); err != nil {
		return respondServiceError(c, err)
	}

	return respondMessage(c, http.StatusOK, msgPromptDeleted)
}
