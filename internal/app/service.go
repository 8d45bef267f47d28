package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"design-service/internal/cache"
	"design-service/internal/config"
	"design-service/internal/domain/image"
	"design-service/internal/domain/project"
	"design-service/internal/domain/prompt"
	"design-service/internal/domain/space"
	"design-service/internal/domain/task"
	"design-service/internal/genimage"
	"design-service/internal/limits"
	"design-service/internal/naming"
	"design-service/internal/storage/s3"
	"design-service/internal/workspace"
	apperrors "design-service/pkg/errors"
	"design-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const (
	msgProjectLimitReached   = "you have reached the maximum number of projects"
	msgSpaceLimitReached     = "this project has reached its space limit"
	msgImageLimitReached     = "this space has reached its image limit"
	msgOperationLimitReached = "this image has reached its operation limit"
	msgNotYourResource       = "you do not have access to this resource"
	msgInvalidPayload        = "generated image payload is not valid base64"
	msgUploadTooLarge        = "image exceeds the maximum upload size"

	usageIncrementTimeout = 5 * time.Second
	cacheSweepSchedule    = "@every 5m"
	purgeSchedule         = "@daily"
)

// Service orchestrates the design workflow: uploads, generation previews,
// optimistic saves, and the project/space hierarchy around them.
type Service struct {
	cfg *config.Config

	projects ProjectRepository
	spaces   SpaceRepository
	images   ImageRepository
	prompts  PromptRepository
	usage    UsageRepository

	storage   ObjectStorage
	generator Generator

	payloadCache *cache.PayloadCache
	workspace    *workspace.Store
	limits       *limits.Checker

	cron *cron.Cron
}

func NewService(
	cfg *config.Config,
	projects ProjectRepository,
	spaces SpaceRepository,
	images ImageRepository,
	prompts PromptRepository,
	usage UsageRepository,
	storage ObjectStorage,
	generator Generator,
) *Service {
	return &Service{
		cfg:          cfg,
		projects:     projects,
		spaces:       spaces,
		images:       images,
		prompts:      prompts,
		usage:        usage,
		storage:      storage,
		generator:    generator,
		payloadCache: cache.NewPayloadCache(),
		workspace:    workspace.NewStore(),
		limits:       limits.NewChecker(cfg.Limits),
		cron:         cron.New(),
	}
}

// StartMaintenance schedules the cache sweep and the retention purge.
func (s *Service) StartMaintenance() error {
	if _, err := s.cron.AddFunc(cacheSweepSchedule, s.payloadCache.Clear); err != nil {
		return fmt.Errorf("failed to schedule cache sweep: %w", err)
	}

	if _, err := s.cron.AddFunc(purgeSchedule, s.purgeDeletedImages); err != nil {
		return fmt.Errorf("failed to schedule retention purge: %w", err)
	}

	s.cron.Start()
	return nil
}

// StopMaintenance stops the scheduled jobs and waits for running ones.
func (s *Service) StopMaintenance() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Service) purgeDeletedImages() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-s.cfg.App.RetentionWindow)
	objects, err := s.images.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		log.Printf("retention purge failed: %v", err)
		return
	}

	for _, obj := range objects {
		if err := s.storage.DeleteObject(ctx, obj.Bucket, obj.StorageKey); err != nil {
			log.Printf("failed to delete purged object %s/%s: %v", obj.Bucket, obj.StorageKey, err)
		}
	}

	if len(objects) > 0 {
		log.Printf("retention purge removed %d images", len(objects))
	}
}

// CreateProject creates a project and its backing bucket, rolling the record
// back when the bucket cannot be created.
func (s *Service) CreateProject(ctx context.Context, userID uuid.UUID, name string) (*project.Project, error) {
	if err := validator.ProjectName(name); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	count, err := s.projects.CountByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if result := s.limits.CheckProjectLimit(count); !result.CanAdd {
		return nil, apperrors.LimitReached(msgProjectLimitReached)
	}

	proj, err := s.projects.Create(ctx, project.CreateProjectInput{OwnerID: userID, Name: name})
	if err != nil {
		return nil, err
	}

	if err := s.storage.CreateBucket(ctx, proj.S3BucketName, s.cfg.AWS.Region); err != nil {
		if deleteErr := s.projects.Delete(ctx, proj.ID); deleteErr != nil {
			log.Printf("failed to roll back project %s after bucket creation failure: %v", proj.ID, deleteErr)
		}
		return nil, apperrors.InternalServer("failed to provision project storage", err)
	}

	return proj, nil
}

func (s *Service) ListProjects(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	return s.projects.ListByOwner(ctx, userID)
}

func (s *Service) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*project.Project, error) {
	return s.ownedProject(ctx, userID, projectID)
}

func (s *Service) UpdateProject(ctx context.Context, userID, projectID uuid.UUID, input project.UpdateProjectInput) (*project.Project, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validator.ProjectName(*input.Name); err != nil {
			return nil, apperrors.Validation(err.Error())
		}
	}

	if err := s.projects.Update(ctx, projectID, input); err != nil {
		return nil, err
	}

	return s.projects.GetByID(ctx, projectID)
}

func (s *Service) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	proj, err := s.ownedProject(ctx, userID, projectID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteBucket(ctx, proj.S3BucketName); err != nil {
		log.Printf("failed to delete bucket %s: %v", proj.S3BucketName, err)
	}

	return s.projects.Delete(ctx, projectID)
}

func (s *Service) CreateSpace(ctx context.Context, userID uuid.UUID, input space.CreateSpaceInput) (*space.Space, error) {
	if err := validator.SpaceName(input.Name); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if _, err := s.ownedProject(ctx, userID, input.ProjectID); err != nil {
		return nil, err
	}

	count, err := s.spaces.CountByProject(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if result := s.limits.CheckSpaceLimit(count); !result.CanAdd {
		return nil, apperrors.LimitReached(msgSpaceLimitReached)
	}

	return s.spaces.Create(ctx, input)
}

func (s *Service) ListSpaces(ctx context.Context, userID, projectID uuid.UUID) ([]*space.Space, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	return s.spaces.ListByProject(ctx, projectID)
}

func (s *Service) UpdateSpace(ctx context.Context, userID, spaceID uuid.UUID, input space.UpdateSpaceInput) (*space.Space, error) {
	sp, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedProject(ctx, userID, sp.ProjectID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validator.SpaceName(*input.Name); err != nil {
			return nil, apperrors.Validation(err.Error())
		}
	}

	if err := s.spaces.Update(ctx, spaceID, input); err != nil {
		return nil, err
	}

	return s.spaces.GetByID(ctx, spaceID)
}

func (s *Service) DeleteSpace(ctx context.Context, userID, spaceID uuid.UUID) error {
	sp, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return err
	}

	if _, err := s.ownedProject(ctx, userID, sp.ProjectID); err != nil {
		return err
	}

	return s.spaces.Delete(ctx, spaceID)
}

// UploadImage stores an original room photo and creates its record with an
// empty evolution chain.
func (s *Service) UploadImage(ctx context.Context, req UploadImageRequest) (*image.Image, error) {
	if err := validator.UploadFileName(req.Name); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := validator.ImageMimeType(req.MimeType); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if int64(len(req.Data)) > s.cfg.App.MaxUploadSize {
		return nil, apperrors.Validation(msgUploadTooLarge)
	}

	sp, err := s.spaces.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	proj, err := s.ownedProject(ctx, req.UserID, sp.ProjectID)
	if err != nil {
		return nil, err
	}

	count, err := s.images.CountBySpace(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	if result := s.limits.CheckImageLimit(count); !result.CanAdd {
		return nil, apperrors.LimitReached(msgImageLimitReached)
	}

	imageID := uuid.New()
	objectKey := s3.BuildObjectKey(req.SpaceID, imageID, req.Name)

	if err := s.storage.UploadObject(ctx, proj.S3BucketName, objectKey, req.Data, req.MimeType); err != nil {
		return nil, apperrors.InternalServer("failed to store image", err)
	}

	img, err := s.images.Create(ctx, image.CreateImageInput{
		ID:         imageID,
		SpaceID:    req.SpaceID,
		ProjectID:  proj.ID,
		OwnerID:    req.UserID,
		Name:       req.Name,
		MimeType:   req.MimeType,
		StorageKey: objectKey,
	})
	if err != nil {
		if deleteErr := s.storage.DeleteObject(ctx, proj.S3BucketName, objectKey); deleteErr != nil {
			log.Printf("failed to roll back object %s after image create failure: %v", objectKey, deleteErr)
		}
		return nil, err
	}

	s.payloadCache.Set(
		objectURL(proj.S3BucketName, objectKey),
		base64.StdEncoding.EncodeToString(req.Data),
		req.MimeType,
		time.Now().Add(s.cfg.App.PayloadCacheTTL),
	)

	return img, nil
}

func (s *Service) ListImages(ctx context.Context, userID uuid.UUID, filter image.ListImagesFilter) ([]*image.Image, error) {
	sp, err := s.spaces.GetByID(ctx, filter.SpaceID)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedProject(ctx, userID, sp.ProjectID); err != nil {
		return nil, err
	}

	return s.images.List(ctx, filter)
}

func (s *Service) GetImage(ctx context.Context, userID, imageID uuid.UUID) (*image.Image, error) {
	return s.ownedImage(ctx, userID, imageID)
}

func (s *Service) SoftDeleteImage(ctx context.Context, userID, imageID uuid.UUID) error {
	if _, err := s.ownedImage(ctx, userID, imageID); err != nil {
		return err
	}

	return s.images.SoftDelete(ctx, imageID)
}

// ImageDownloadLink returns a presigned URL for the stored image object.
func (s *Service) ImageDownloadLink(ctx context.Context, userID, imageID uuid.UUID) (string, error) {
	img, err := s.ownedImage(ctx, userID, imageID)
	if err != nil {
		return "", err
	}

	proj, err := s.projects.GetByID(ctx, img.ProjectID)
	if err != nil {
		return "", err
	}

	return s.storage.GeneratePresignedDownloadURL(ctx, proj.S3BucketName, img.StorageKey)
}

// GenerateImage runs one generative task against a source image and returns
// the preview payload. Nothing is persisted; a successful run fires a
// best-effort usage increment.
func (s *Service) GenerateImage(ctx context.Context, req GenerateImageRequest) (*GenerateImageResponse, error) {
	if err := req.TaskName.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := req.Options.ValidateFor(req.TaskName); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := validator.CustomPrompt(req.CustomPrompt); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	source, err := s.ownedImage(ctx, req.UserID, req.SourceImageID)
	if err != nil {
		return nil, err
	}

	if result := s.limits.CheckOperationLimit(len(source.Operations)); !result.CanAdd {
		return nil, apperrors.LimitReached(msgOperationLimitReached)
	}

	data, mimeType, err := s.sourcePayload(ctx, source)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, req.TaskName, genimage.Request{
		SourceData:     data,
		SourceMimeType: mimeType,
		Options:        req.Options,
		CustomPrompt:   req.CustomPrompt,
	})
	if err != nil {
		return nil, err
	}

	// Usage tracking must never block or fail the generation result.
	go func(userID uuid.UUID, taskName task.Kind) {
		ctx, cancel := context.WithTimeout(context.Background(), usageIncrementTimeout)
		defer cancel()
		if err := s.usage.Increment(ctx, userID, taskName); err != nil {
			log.Printf("usage increment failed for user %s: %v", userID, err)
		}
	}(req.UserID, req.TaskName)

	return &GenerateImageResponse{
		Payload:  base64.StdEncoding.EncodeToString(result.Data),
		MimeType: result.MimeType,
	}, nil
}

// ConfirmImage saves a previewed generation as a new image. The record is
// added to the user's workspace under a temporary id before the remote write;
// on failure the optimistic record is removed and the error returned.
func (s *Service) ConfirmImage(ctx context.Context, req ConfirmImageRequest) (*image.Image, error) {
	if err := req.TaskName.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := req.Options.ValidateFor(req.TaskName); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := validator.CustomPrompt(req.CustomPrompt); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := naming.ValidateBaseName(req.NamePrefs.BaseName); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	data, err := base64.StdEncoding.DecodeString(req.Payload)
	if err != nil {
		return nil, apperrors.Validation(msgInvalidPayload)
	}

	source, err := s.ownedImage(ctx, req.UserID, req.SourceImageID)
	if err != nil {
		return nil, err
	}

	count, err := s.images.CountBySpace(ctx, source.SpaceID)
	if err != nil {
		return nil, err
	}

	if result := s.limits.CheckImageLimit(count); !result.CanAdd {
		return nil, apperrors.LimitReached(msgImageLimitReached)
	}

	if result := s.limits.CheckOperationLimit(len(source.Operations)); !result.CanAdd {
		return nil, apperrors.LimitReached(msgOperationLimitReached)
	}

	proj, err := s.projects.GetByID(ctx, source.ProjectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	finalName := s.finalName(req, now)

	operation := image.Operation{
		TaskName:      req.TaskName,
		CustomPrompt:  req.CustomPrompt,
		Color:         req.Options.Color,
		Texture:       req.Options.Texture,
		Item:          req.Options.Item,
		SourceImageID: source.ID,
		AppliedAt:     now,
	}

	chain := make([]image.Operation, 0, len(source.Operations)+1)
	chain = append(chain, source.Operations...)
	chain = append(chain, operation)

	tempID := uuid.New()
	optimistic := &image.Image{
		ID:         tempID,
		SpaceID:    source.SpaceID,
		ProjectID:  source.ProjectID,
		OwnerID:    req.UserID,
		Name:       finalName,
		MimeType:   req.MimeType,
		Operations: chain,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.workspace.Add(req.UserID, optimistic)

	persisted, err := s.persistConfirmed(ctx, proj, source, req, finalName, chain, data)
	if err != nil {
		s.workspace.Remove(req.UserID, tempID)
		return nil, err
	}

	s.workspace.Replace(req.UserID, tempID, persisted)

	s.payloadCache.Set(
		objectURL(proj.S3BucketName, persisted.StorageKey),
		req.Payload,
		req.MimeType,
		now.Add(s.cfg.App.PayloadCacheTTL),
	)

	// Prompt history is a convenience; its failure never surfaces.
	if req.SaveCustomPrompt && req.CustomPrompt != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), usageIncrementTimeout)
			defer cancel()
			if _, err := s.prompts.Save(ctx, prompt.SaveCustomPromptInput{
				UserID:    req.UserID,
				ProjectID: source.ProjectID,
				TaskName:  req.TaskName,
				Text:      req.CustomPrompt,
			}); err != nil {
				log.Printf("failed to save prompt history: %v", err)
			}
		}()
	}

	return persisted, nil
}

func (s *Service) persistConfirmed(
	ctx context.Context,
	proj *project.Project,
	source *image.Image,
	req ConfirmImageRequest,
	finalName string,
	chain []image.Operation,
	data []byte,
) (*image.Image, error) {
	imageID := uuid.New()
	objectKey := s3.BuildObjectKey(source.SpaceID, imageID, finalName)

	if err := s.storage.UploadObject(ctx, proj.S3BucketName, objectKey, data, req.MimeType); err != nil {
		return nil, apperrors.InternalServer("failed to store generated image", err)
	}

	persisted, err := s.images.Create(ctx, image.CreateImageInput{
		ID:         imageID,
		SpaceID:    source.SpaceID,
		ProjectID:  source.ProjectID,
		OwnerID:    req.UserID,
		Name:       finalName,
		MimeType:   req.MimeType,
		StorageKey: objectKey,
		Operations: chain,
	})
	if err != nil {
		if deleteErr := s.storage.DeleteObject(ctx, proj.S3BucketName, objectKey); deleteErr != nil {
			log.Printf("failed to roll back object %s after image create failure: %v", objectKey, deleteErr)
		}
		return nil, err
	}

	return persisted, nil
}

// WorkspaceImages lists the user's in-flight image records.
func (s *Service) WorkspaceImages(userID uuid.UUID) []*image.Image {
	return s.workspace.List(userID)
}

func (s *Service) SaveCustomPrompt(ctx context.Context, input prompt.SaveCustomPromptInput) (*prompt.CustomPrompt, error) {
	if err := input.TaskName.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := validator.CustomPrompt(input.Text); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if input.Text == "" {
		return nil, apperrors.Validation("prompt text cannot be empty")
	}

	if _, err := s.ownedProject(ctx, input.UserID, input.ProjectID); err != nil {
		return nil, err
	}

	return s.prompts.Save(ctx, input)
}

func (s *Service) ListCustomPrompts(ctx context.Context, userID, projectID uuid.UUID, taskName task.Kind) ([]*prompt.CustomPrompt, error) {
	if err := taskName.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	return s.prompts.ListByProjectAndTask(ctx, userID, projectID, taskName)
}

func (s *Service) DeleteCustomPrompt(ctx context.Context, userID, promptID uuid.UUID) error {
	return s.prompts.Delete(ctx, promptID, userID)
}

// UsageCount returns how many generations of the given kind the user has run.
func (s *Service) UsageCount(ctx context.Context, userID uuid.UUID, taskName task.Kind) (int64, error) {
	if err := taskName.Validate(); err != nil {
		return 0, apperrors.Validation(err.Error())
	}

	return s.usage.Get(ctx, userID, taskName)
}

// ProjectLimit reports whether the user can create another project.
func (s *Service) ProjectLimit(ctx context.Context, userID uuid.UUID) (limits.CheckResult, error) {
	count, err := s.projects.CountByOwner(ctx, userID)
	if err != nil {
		return limits.CheckResult{}, err
	}
	return s.limits.CheckProjectLimit(count), nil
}

// SpaceLimit reports whether the project can hold another space.
func (s *Service) SpaceLimit(ctx context.Context, userID, projectID uuid.UUID) (limits.CheckResult, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return limits.CheckResult{}, err
	}

	count, err := s.spaces.CountByProject(ctx, projectID)
	if err != nil {
		return limits.CheckResult{}, err
	}
	return s.limits.CheckSpaceLimit(count), nil
}

// ImageLimit reports whether the space can hold another image.
func (s *Service) ImageLimit(ctx context.Context, userID, spaceID uuid.UUID) (limits.CheckResult, error) {
	sp, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return limits.CheckResult{}, err
	}

	if _, err := s.ownedProject(ctx, userID, sp.ProjectID); err != nil {
		return limits.CheckResult{}, err
	}

	count, err := s.images.CountBySpace(ctx, spaceID)
	if err != nil {
		return limits.CheckResult{}, err
	}
	return s.limits.CheckImageLimit(count), nil
}

// OperationLimit reports whether the image's evolution chain can grow.
func (s *Service) OperationLimit(ctx context.Context, userID, imageID uuid.UUID) (limits.CheckResult, error) {
	img, err := s.ownedImage(ctx, userID, imageID)
	if err != nil {
		return limits.CheckResult{}, err
	}
	return s.limits.CheckOperationLimit(len(img.Operations)), nil
}

// sourcePayload returns the raw bytes of the source image, consulting the
// payload cache before hitting storage.
func (s *Service) sourcePayload(ctx context.Context, img *image.Image) ([]byte, string, error) {
	proj, err := s.projects.GetByID(ctx, img.ProjectID)
	if err != nil {
		return nil, "", err
	}

	url := objectURL(proj.S3BucketName, img.StorageKey)

	if entry, found := s.payloadCache.Get(url); found {
		data, err := base64.StdEncoding.DecodeString(entry.Payload)
		if err == nil {
			return data, entry.MimeType, nil
		}
		// A corrupt entry falls through to a fresh download.
		s.payloadCache.Invalidate(url)
	}

	data, err := s.storage.DownloadObject(ctx, proj.S3BucketName, img.StorageKey)
	if err != nil {
		return nil, "", apperrors.InternalServer("failed to load source image", err)
	}

	s.payloadCache.Set(url, base64.StdEncoding.EncodeToString(data), img.MimeType, time.Now().Add(s.cfg.App.PayloadCacheTTL))

	return data, img.MimeType, nil
}

func (s *Service) finalName(req ConfirmImageRequest, now time.Time) string {
	suffix := ""
	if req.NamePrefs.WithSuffix {
		suffix = req.Options.SuffixFor(req.TaskName)
	}

	return naming.Build(naming.Parts{
		Base:          req.NamePrefs.BaseName,
		WithTimestamp: req.NamePrefs.WithTimestamp,
		Suffix:        suffix,
		WithExtension: req.NamePrefs.WithExtension,
		MimeType:      req.MimeType,
	}, now)
}

func (s *Service) ownedProject(ctx context.Context, userID, projectID uuid.UUID) (*project.Project, error) {
	proj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if proj.OwnerID != userID {
		return nil, apperrors.Forbidden(msgNotYourResource)
	}

	return proj, nil
}

func (s *Service) ownedImage(ctx context.Context, userID, imageID uuid.UUID) (*image.Image, error) {
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	if img.OwnerID != userID {
		return nil, apperrors.Forbidden(msgNotYourResource)
	}

	return img, nil
}

func objectURL(bucketName, objectKey string) string {
	return fmt.Sprintf("s3://%s/%s", bucketName, objectKey)
}
