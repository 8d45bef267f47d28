package handler

import (
	"io"
	"net/http"
	"strconv"

	"design-service/internal/app"
	"design-service/internal/auth"
	"design-service/internal/domain/image"
	"design-service/internal/domain/task"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ImageHandler struct {
	service *app.Service
}

func NewImageHandler(service *app.Service) *ImageHandler {
	return &ImageHandler{service: service}
}

// UploadImage accepts a multipart upload of an original room photo.
func (h *ImageHandler) UploadImage(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	spaceID, err := uuid.Parse(c.Param(paramSpaceID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidSpaceID)
	}

	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgUploadFileRequired)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgOpenUploadFail)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgOpenUploadFail)
	}

	img, err := h.service.UploadImage(c.Request().Context(), app.UploadImageRequest{
		UserID:   userID,
		SpaceID:  spaceID,
		Name:     fileHeader.Filename,
		MimeType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:     data,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, img)
}

func (h *ImageHandler) ListImages(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	spaceID, err := uuid.Parse(c.Param(paramSpaceID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidSpaceID)
	}

	includeDeleted, _ := strconv.ParseBool(c.QueryParam(queryIncludeDeleted))

	images, err := h.service.ListImages(c.Request().Context(), userID, image.ListImagesFilter{
		SpaceID:        spaceID,
		IncludeDeleted: includeDeleted,
		Limit:          queryInt(c, queryLimit),
		Offset:         queryInt(c, queryOffset),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) GetImage(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	imageID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidImageID)
	}

	img, err := h.service.GetImage(c.Request().Context(), userID, imageID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, img)
}

func (h *ImageHandler) DeleteImage(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	imageID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidImageID)
	}

	if err := h.service.SoftDeleteImage(c.Request().Context(), userID, imageID); err != nil {
		return respondServiceError(c, err)
	}

	return respondMessage(c, http.StatusOK, msgImageDeleted)
}

func (h *ImageHandler) GetDownloadURL(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	imageID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidImageID)
	}

	url, err := h.service.ImageDownloadLink(c.Request().Context(), userID, imageID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"download_url": url})
}

type GenerateImageRequest struct {
	TaskName     task.Kind             `json:"task_name"`
	Color        *task.ColorSnapshot   `json:"color,omitempty"`
	Texture      *task.TextureSnapshot `json:"texture,omitempty"`
	Item         *task.ItemSnapshot    `json:"item,omitempty"`
	CustomPrompt string                `json:"custom_prompt,omitempty"`
}

// GenerateImage runs a generative task and returns the preview payload
// without persisting anything.
func (h *ImageHandler) GenerateImage(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	imageID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidImageID)
	}

	var req GenerateImageRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	resp, err := h.service.GenerateImage(c.Request().Context(), app.GenerateImageRequest{
		UserID:        userID,
		SourceImageID: imageID,
		TaskName:      req.TaskName,
		Options:       task.Options{Color: req.Color, Texture: req.Texture, Item: req.Item},
		CustomPrompt:  req.CustomPrompt,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

type ConfirmImageRequest struct {
	TaskName         task.Kind             `json:"task_name"`
	Color            *task.ColorSnapshot   `json:"color,omitempty"`
	Texture          *task.TextureSnapshot `json:"texture,omitempty"`
	Item             *task.ItemSnapshot    `json:"item,omitempty"`
	CustomPrompt     string                `json:"custom_prompt,omitempty"`
	SaveCustomPrompt bool                  `json:"save_custom_prompt,omitempty"`
	Payload          string                `json:"payload"`
	MimeType         string                `json:"mime_type"`
	BaseName         string                `json:"base_name"`
	WithTimestamp    bool                  `json:"with_timestamp,omitempty"`
	WithSuffix       bool                  `json:"with_suffix,omitempty"`
	WithExtension    bool                  `json:"with_extension,omitempty"`
}

// ConfirmImage saves a previewed generation as a new image in the space.
func (h *ImageHandler) ConfirmImage(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	imageID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidImageID)
	}

	var req ConfirmImageRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	img, err := h.service.ConfirmImage(c.Request().Context(), app.ConfirmImageRequest{
		UserID:           userID,
		SourceImageID:    imageID,
		TaskName:         req.TaskName,
		Options:          task.Options{Color: req.Color, Texture: req.Texture, Item: req.Item},
		CustomPrompt:     req.CustomPrompt,
		SaveCustomPrompt: req.SaveCustomPrompt,
		Payload:          req.Payload,
		MimeType:         req.MimeType,
		NamePrefs: app.NamePrefs{
			BaseName:      req.BaseName,
			WithTimestamp: req.WithTimestamp,
			WithSuffix:    req.WithSuffix,
			WithExtension: req.WithExtension,
		},
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, img)
}

// ListWorkspace returns the caller's in-flight image records.
func (h *ImageHandler) ListWorkspace(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	return c.JSON(http.StatusOK, h.service.WorkspaceImages(userID))
}

func (h *ImageHandler) ImageLimit(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	spaceID, err := uuid.Parse(c.Param(paramSpaceID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidSpaceID)
	}

	result, err := h.service.ImageLimit(c.Request().Context(), userID, spaceID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ImageHandler) OperationLimit(c echo.Context) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	imageID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidImageID)
	}

	result, err := h.service.OperationLimit(c.Request().Context(), userID, imageID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
