package container

import (
	"fmt"
	"net/http"

	"go-image-quality/internal/config"
	"go-image-quality/internal/factory"
	"go-image-quality/internal/logger"
	"go-image-quality/internal/observer"
	"go-image-quality/internal/repository"
	"go-image-quality/internal/service"
	"go-image-quality/internal/storage"
	"go-image-quality/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config          *config.Config
	imageFetcher    storage.ImageFetcher
	imageRepository repository.ImageRepository
	validators      factory.ValidatorFactory
	metrics         *observer.MetricsObserver
	qualityService  service.QualityService
	handler         http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	imageFetcher, err := factory.NewImageFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create image fetcher: %w", err)
	}

	imageRepository := repository.NewImageRepository(imageFetcher)
	validators := factory.NewValidatorFactory()

	metrics := observer.NewMetricsObserver()
	publisher := observer.NewEventPublisher()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))
	publisher.Subscribe(metrics)

	qualityService := service.NewQualityService(imageRepository, validators, publisher, cfg.BatchConcurrency)
	handler := transport.NewHandler(qualityService, validators, metrics, cfg)

	return &Container{
		config:          cfg,
		imageFetcher:    imageFetcher,
		imageRepository: imageRepository,
		validators:      validators,
		metrics:         metrics,
		qualityService:  qualityService,
		handler:         handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Service returns the quality service
func (c *Container) Service() service.QualityService {
	return c.qualityService
}
