package http

import (
	"context"
	"fmt"
	stdhttp "net/http"

	"design-service/internal/app"
	"design-service/internal/auth"
	"design-service/internal/config"
	"design-service/internal/http/handler"
	"design-service/internal/http/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus = "status"
	statusOK      = "ok"
)

type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

func NewServer(cfg *config.Config, service *app.Service) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Set custom HTTP error handler
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dB", cfg.App.MaxUploadSize)))

	// Global rate limiting
	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	// Strict rate limiting for the generation endpoints
	strictRateLimiter := middleware.NewStrictRateLimiter()

	projectHandler := handler.NewProjectHandler(service)
	spaceHandler := handler.NewSpaceHandler(service)
	imageHandler := handler.NewImageHandler(service)
	promptHandler := handler.NewPromptHandler(service)
	usageHandler := handler.NewUsageHandler(service)

	e.GET("/health", healthCheck)

	api := e.Group("/api")
	api.Use(auth.Middleware(cfg.JWT.Secret))

	api.GET("/projects", projectHandler.ListProjects)
	api.POST("/projects", projectHandler.CreateProject)
	api.GET("/projects/limit", projectHandler.ProjectLimit)
	api.GET("/projects/:id", projectHandler.GetProject)
	api.PUT("/projects/:id", projectHandler.UpdateProject)
	api.DELETE("/projects/:id", projectHandler.DeleteProject)

	api.POST("/projects/:project_id/spaces", spaceHandler.CreateSpace)
	api.GET("/projects/:project_id/spaces", spaceHandler.ListSpaces)
	api.GET("/projects/:project_id/spaces/limit", spaceHandler.SpaceLimit)
	api.PUT("/spaces/:id", spaceHandler.UpdateSpace)
	api.DELETE("/spaces/:id", spaceHandler.DeleteSpace)

	api.POST("/spaces/:space_id/images", imageHandler.UploadImage)
	api.GET("/spaces/:space_id/images", imageHandler.ListImages)
	api.GET("/spaces/:space_id/images/limit", imageHandler.ImageLimit)
	api.GET("/images/:id", imageHandler.GetImage)
	api.DELETE("/images/:id", imageHandler.DeleteImage)
	api.GET("/images/:id/download-url", imageHandler.GetDownloadURL)
	api.GET("/images/:id/operations/limit", imageHandler.OperationLimit)
	api.GET("/workspace", imageHandler.ListWorkspace)

	api.POST("/images/:id/generate", imageHandler.GenerateImage, strictRateLimiter.Middleware())
	api.POST("/images/:id/confirm", imageHandler.ConfirmImage)

	api.POST("/projects/:project_id/prompts", promptHandler.SavePrompt)
	api.GET("/projects/:project_id/prompts", promptHandler.ListPrompts)
	api.DELETE("/prompts/:id", promptHandler.DeletePrompt)

	api.GET("/usage", usageHandler.GetUsage)

	return &Server{
		echo: e,
		cfg:  cfg,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
