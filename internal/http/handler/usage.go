package handler

import (
	"net/http"

	"design-service/internal/app"
	"design-service/internal/auth"
	"design-service/internal/domain/task"

	"github.com/labstack/echo/v4"
)

type UsageHandler struct {
	service *app.Service
}

func NewUsageHandler(service *app.Service) *UsageHandler {
	return &UsageHandler{service: service}
}

func (h *UsageHandler) GetUsage(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	taskName := task.Kind(c.QueryParam(queryTaskName))

	count, err := h.service.UsageCount(c.Request().Context(), userID, taskName)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"task_name": taskName,
		"count":     count,
	})
}
