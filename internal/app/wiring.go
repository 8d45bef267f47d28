package app

import (
	"context"
	"fmt"
	"log"

	"design-service/internal/config"
	"design-service/internal/genimage"
	"design-service/internal/repository/postgres"
	"design-service/internal/storage/s3"
)

// Application bundles the service with the infrastructure it owns so main can
// shut everything down in order.
type Application struct {
	Config  *config.Config
	Service *Service

	db        *postgres.DB
	generator *genimage.Client
}

// Initialize loads configuration and wires the concrete repositories, object
// storage, and the generation client into a Service.
func Initialize(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	objectStorage, err := s3.NewClient(&cfg.AWS, cfg.App.PresignedURLExpiry)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	generator, err := genimage.NewClient(ctx, &cfg.Gemini)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	service := NewService(
		cfg,
		postgres.NewProjectRepository(db),
		postgres.NewSpaceRepository(db),
		postgres.NewImageRepository(db),
		postgres.NewPromptRepository(db),
		postgres.NewUsageRepository(db),
		objectStorage,
		generator,
	)

	if err := service.StartMaintenance(); err != nil {
		generator.Close()
		db.Close()
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Service:   service,
		db:        db,
		generator: generator,
	}, nil
}

// Shutdown stops background jobs and releases connections.
func (a *Application) Shutdown() {
	a.Service.StopMaintenance()

	if a.generator != nil {
		if err := a.generator.Close(); err != nil {
			log.Printf("failed to close generation client: %v", err)
		}
	}

	if a.db != nil {
		a.db.Close()
	}
}
