package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"design-service/internal/app"
	"design-service/internal/auth"
	"design-service/internal/config"
	"design-service/internal/domain/image"
	"design-service/internal/domain/project"
	"design-service/internal/domain/prompt"
	"design-service/internal/domain/space"
	"design-service/internal/domain/task"
	"design-service/internal/genimage"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- stubs ----

type stubProjects struct{ proj *project.Project }

func (s *stubProjects) Create(context.Context, project.CreateProjectInput) (*project.Project, error) {
	return s.proj, nil
}

func (s *stubProjects) GetByID(context.Context, uuid.UUID) (*project.Project, error) {
	return s.proj, nil
}

func (s *stubProjects) ListByOwner(context.Context, uuid.UUID) ([]*project.Project, error) {
	return nil, nil
}

func (s *stubProjects) CountByOwner(context.Context, uuid.UUID) (int, error) { return 0, nil }

func (s *stubProjects) Update(context.Context, uuid.UUID, project.UpdateProjectInput) error {
	return nil
}

func (s *stubProjects) Delete(context.Context, uuid.UUID) error { return nil }

type stubSpaces struct{ sp *space.Space }

func (s *stubSpaces) Create(context.Context, space.CreateSpaceInput) (*space.Space, error) {
	return s.sp, nil
}

func (s *stubSpaces) GetByID(context.Context, uuid.UUID) (*space.Space, error) { return s.sp, nil }

func (s *stubSpaces) ListByProject(context.Context, uuid.UUID) ([]*space.Space, error) {
	return nil, nil
}

func (s *stubSpaces) CountByProject(context.Context, uuid.UUID) (int, error) { return 0, nil }

func (s *stubSpaces) Update(context.Context, uuid.UUID, space.UpdateSpaceInput) error { return nil }

func (s *stubSpaces) Delete(context.Context, uuid.UUID) error { return nil }

type stubImages struct{ lastFilter image.ListImagesFilter }

func (s *stubImages) Create(context.Context, image.CreateImageInput) (*image.Image, error) {
	return nil, nil
}

func (s *stubImages) GetByID(context.Context, uuid.UUID) (*image.Image, error) { return nil, nil }

func (s *stubImages) List(_ context.Context, filter image.ListImagesFilter) ([]*image.Image, error) {
	s.lastFilter = filter
	return nil, nil
}

func (s *stubImages) CountBySpace(context.Context, uuid.UUID) (int, error) { return 0, nil }

func (s *stubImages) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *stubImages) PurgeDeletedBefore(context.Context, time.Time) ([]image.PurgedObject, error) {
	return nil, nil
}

type stubPrompts struct{}

func (stubPrompts) Save(context.Context, prompt.SaveCustomPromptInput) (*prompt.CustomPrompt, error) {
	return nil, nil
}

func (stubPrompts) ListByProjectAndTask(context.Context, uuid.UUID, uuid.UUID, task.Kind) ([]*prompt.CustomPrompt, error) {
	return nil, nil
}

func (stubPrompts) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubUsage struct{}

func (stubUsage) Increment(context.Context, uuid.UUID, task.Kind) error { return nil }

func (stubUsage) Get(context.Context, uuid.UUID, task.Kind) (int64, error) { return 0, nil }

type stubStorage struct{}

func (stubStorage) UploadObject(context.Context, string, string, []byte, string) error { return nil }

func (stubStorage) DownloadObject(context.Context, string, string) ([]byte, error) { return nil, nil }

func (stubStorage) GeneratePresignedDownloadURL(context.Context, string, string) (string, error) {
	return "", nil
}

func (stubStorage) DeleteObject(context.Context, string, string) error { return nil }

func (stubStorage) CreateBucket(context.Context, string, string) error { return nil }

func (stubStorage) DeleteBucket(context.Context, string) error { return nil }

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, task.Kind, genimage.Request) (*genimage.Result, error) {
	return nil, nil
}

func newImageHandlerFixture(images *stubImages, userID, projectID uuid.UUID, sp *space.Space) *ImageHandler {
	cfg := &config.Config{
		App: config.AppConfig{
			PayloadCacheTTL: time.Minute,
			MaxUploadSize:   1 << 20,
		},
		Limits: config.LimitsConfig{
			MaxProjectsPerUser:    10,
			MaxSpacesPerProject:   20,
			MaxImagesPerSpace:     50,
			MaxOperationsPerImage: 15,
		},
	}

	service := app.NewService(
		cfg,
		&stubProjects{proj: &project.Project{ID: projectID, OwnerID: userID}},
		&stubSpaces{sp: sp},
		images,
		stubPrompts{},
		stubUsage{},
		stubStorage{},
		stubGenerator{},
	)

	return NewImageHandler(service)
}

func listImagesContext(e *echo.Echo, target string, spaceID, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramSpaceID)
	c.SetParamValues(spaceID.String())
	c.Set(auth.ContextKeyUserID, userID)
	return c, rec
}

func TestListImages_AppliesPaginationQueryParams(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	spaceID := uuid.New()

	images := &stubImages{}
	h := newImageHandlerFixture(images, userID, projectID, &space.Space{ID: spaceID, ProjectID: projectID})

	c, rec := listImagesContext(echo.New(), "/?limit=10&offset=5&include_deleted=true", spaceID, userID)

	require.NoError(t, h.ListImages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, spaceID, images.lastFilter.SpaceID)
	assert.True(t, images.lastFilter.IncludeDeleted)
	assert.Equal(t, 10, images.lastFilter.Limit)
	assert.Equal(t, 5, images.lastFilter.Offset)
}

func TestListImages_IgnoresMalformedPaginationQueryParams(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	spaceID := uuid.New()

	images := &stubImages{}
	h := newImageHandlerFixture(images, userID, projectID, &space.Space{ID: spaceID, ProjectID: projectID})

	c, rec := listImagesContext(echo.New(), "/?limit=abc&offset=-3", spaceID, userID)

	require.NoError(t, h.ListImages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.False(t, images.lastFilter.IncludeDeleted)
	assert.Zero(t, images.lastFilter.Limit)
	assert.Zero(t, images.lastFilter.Offset)
}
