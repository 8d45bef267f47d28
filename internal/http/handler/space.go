package handler

import (
	"net/http"
	"strings"

	"design-service/internal/app"
	"design-service/internal/auth"
	"design-service/internal/domain/space"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SpaceHandler struct {
	service *app.Service
}

func NewSpaceHandler(service *app.Service) *SpaceHandler {
	return &SpaceHandler{service: service}
}

type CreateSpaceRequest struct {
	Name     string `json:"name"`
	RoomType string `json:"room_type"`
}

func (h *SpaceHandler) CreateSpace(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramProjectID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	var req CreateSpaceRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}
	req.Name = strings.TrimSpace(req.Name)

	sp, err := h.service.CreateSpace(c.Request().Context(), userID, space.CreateSpaceInput{
		ProjectID: projectID,
		Name:      req.Name,
		RoomType:  strings.TrimSpace(req.RoomType),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, sp)
}

func (h *SpaceHandler) ListSpaces(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramProjectID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	spaces, err := h.service.ListSpaces(c.Request().Context(), userID, projectID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, spaces)
}

type UpdateSpaceRequest struct {
	Name     *string `json:"name"`
	RoomType *string `json:"room_type"`
}

func (h *SpaceHandler) UpdateSpace(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	spaceID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidSpaceID)
	}

	var req UpdateSpaceRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	sp, err := h.service.UpdateSpace(c.Request().Context(), userID, spaceID, space.UpdateSpaceInput{
		Name:     req.Name,
		RoomType: req.RoomType,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, sp)
}

func (h *SpaceHandler) DeleteSpace(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	spaceID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidSpaceID)
	}

	if err := h.service.DeleteSpace(c.Request().Context(), userID, spaceID); err != nil {
		return respondServiceError(c, err)
	}

	return respondMessage(c, http.StatusOK, msgSpaceDeleted)
}

func (h *SpaceHandler) SpaceLimit(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	projectID, err := uuid.Parse(c.Param(paramProjectID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidProjectID)
	}

	result, err := h.service.SpaceLimit(c.Request().Context(), userID, projectID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
