package handler

import (
	"net/http"
	"strings"

	"design-service/internal/app"
	"design-service/internal/auth"
	"design-service/internal/domain/project"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	service *app.Service
}

func NewProjectHandler(service *app.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	var req CreateProjectRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}
	req.Name = strings.TrimSpace(req.Name)

	proj, err := h.service.CreateProject(c.Request().Context(), userID, req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, proj)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projects, err := h.service.ListProjects(c.Request().Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	proj, err := h.service.GetProject(c.Request().Context(), userID, projectID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, proj)
}

type UpdateProjectRequest struct {
	Name *string `json:"name"`
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	var req UpdateProjectRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	proj, err := h.service.UpdateProject(c.Request().Context(), userID, projectID, project.UpdateProjectInput{Name: req.Name})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, proj)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	if err := h.service.DeleteProject(c.Request().Context(), userID, projectID); err != nil {
		return respondServiceError(c, err)
	}

	return respondMessage(c, http.StatusOK, msgProjectDeleted)
}

func (h *ProjectHandler) ProjectLimit(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	result, err := h.service.ProjectLimit(c.Request().Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
