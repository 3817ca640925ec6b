package service

import (
	"context"
	"image"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "go-image-quality/internal/errors"
	"go-image-quality/internal/factory"
	"go-image-quality/internal/observer"
	"go-image-quality/internal/repository"
	"go-image-quality/internal/strategy"
	"go-image-quality/pkg/models"
	"go-image-quality/pkg/quality"
)

// QualityService runs quality validations against remote or uploaded
// images and publishes lifecycle events.
type QualityService interface {
	// ValidateURL fetches one image and produces a full verdict.
	ValidateURL(ctx context.Context, imageURL string, cfg quality.Config) (*models.ValidationResponse, error)

	// ValidateBytes decodes uploaded image data and produces a full verdict.
	ValidateBytes(ctx context.Context, data []byte, cfg quality.Config) (*models.ValidationResponse, error)

	// ValidateBatch validates several URLs under one shared config. Per-URL
	// failures are reported in the corresponding entry, not as an overall
	// error.
	ValidateBatch(ctx context.Context, urls []string, cfg quality.Config) ([]models.BatchEntry, error)

	// CheckMetric runs a single-metric check against a fetched image.
	CheckMetric(ctx context.Context, imageURL, metric string, cfg quality.Config) (*models.MetricReport, error)

	// ValidateImageURL validates a URL without fetching anything.
	ValidateImageURL(imageURL string) error
}

type qualityService struct {
	imageRepo  repository.ImageRepository
	validators factory.ValidatorFactory
	publisher  observer.Subject
	batchLimit int
}

// NewQualityService creates a new quality validation service
func NewQualityService(
	imageRepo repository.ImageRepository,
	validators factory.ValidatorFactory,
	publisher observer.Subject,
	batchLimit int,
) QualityService {
	if batchLimit <= 0 {
		batchLimit = 4
	}
	return &qualityService{
		imageRepo:  imageRepo,
		validators: validators,
		publisher:  publisher,
		batchLimit: batchLimit,
	}
}

func (s *qualityService) ValidateURL(ctx context.Context, imageURL string, cfg quality.Config) (*models.ValidationResponse, error) {
	start := time.Now()
	s.notify(ctx, observer.ValidationEvent{
		EventType: observer.ValidationStarted,
		Timestamp: start,
		ImageURL:  imageURL,
	})

	img, err := s.fetch(ctx, imageURL)
	if err != nil {
		s.notify(ctx, observer.ValidationEvent{
			EventType:    observer.ValidationFailed,
			Timestamp:    time.Now(),
			ImageURL:     imageURL,
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	result := s.validators.ValidatorFor(cfg).Validate(img)
	response := s.buildResponse(imageURL, cfg, result, start)

	s.notify(ctx, observer.ValidationEvent{
		EventType:      observer.ValidationCompleted,
		Timestamp:      time.Now(),
		ImageURL:       imageURL,
		Valid:          result.IsValid,
		IssueCount:     len(result.Issues),
		ProcessingTime: time.Since(start),
	})
	return response, nil
}

func (s *qualityService) ValidateBytes(ctx context.Context, data []byte, cfg quality.Config) (*models.ValidationResponse, error) {
	start := time.Now()
	s.notify(ctx, observer.ValidationEvent{
		EventType: observer.ValidationStarted,
		Timestamp: start,
	})

	result, err := s.validators.ValidatorFor(cfg).ValidateBytes(data)
	if err != nil {
		s.notify(ctx, observer.ValidationEvent{
			EventType:    observer.ValidationFailed,
			Timestamp:    time.Now(),
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	response := s.buildResponse("", cfg, result, start)
	s.notify(ctx, observer.ValidationEvent{
		EventType:      observer.ValidationCompleted,
		Timestamp:      time.Now(),
		Valid:          result.IsValid,
		IssueCount:     len(result.Issues),
		ProcessingTime: time.Since(start),
	})
	return response, nil
}

func (s *qualityService) ValidateBatch(ctx context.Context, urls []string, cfg quality.Config) ([]models.BatchEntry, error) {
	entries := make([]models.BatchEntry, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for i, imageURL := range urls {
		i, imageURL := i, imageURL
		g.Go(func() error {
			entries[i] = models.BatchEntry{URL: imageURL}
			response, err := s.ValidateURL(gctx, imageURL, cfg)
			if err != nil {
				entries[i].Error = err.Error()
				return nil
			}
			entries[i].Response = response
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *qualityService) CheckMetric(ctx context.Context, imageURL, metric string, cfg quality.Config) (*models.MetricReport, error) {
	check, err := strategy.ForMetric(metric, s.validators.ValidatorFor(cfg))
	if err != nil {
		return nil, err
	}

	img, err := s.fetch(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	report := check.Check(img)
	return &report, nil
}

func (s *qualityService) ValidateImageURL(imageURL string) error {
	return s.imageRepo.ValidateImageURL(imageURL)
}

func (s *qualityService) fetch(ctx context.Context, imageURL string) (image.Image, error) {
	if err := s.imageRepo.ValidateImageURL(imageURL); err != nil {
		return nil, err
	}

	img, err := s.imageRepo.FetchImage(ctx, imageURL)
	if err != nil {
		s.notify(ctx, observer.ValidationEvent{
			EventType:    observer.ImageFetchFailed,
			Timestamp:    time.Now(),
			ImageURL:     imageURL,
			ErrorMessage: err.Error(),
		})
		if ctx.Err() != nil {
			return nil, apperrors.NewTimeoutError("image fetch timed out", err)
		}
		return nil, apperrors.NewNetworkError("failed to fetch image", err)
	}

	s.notify(ctx, observer.ValidationEvent{
		EventType: observer.ImageFetched,
		Timestamp: time.Now(),
		ImageURL:  imageURL,
	})
	return img, nil
}

func (s *qualityService) buildResponse(imageURL string, cfg quality.Config, result models.QualityResult, start time.Time) *models.ValidationResponse {
	return &models.ValidationResponse{
		ImageURL:          imageURL,
		Preset:            presetName(cfg),
		Timestamp:         start.UTC().Format(time.RFC3339),
		ProcessingTimeSec: time.Since(start).Seconds(),
		Result:            result,
	}
}

func (s *qualityService) notify(ctx context.Context, event observer.ValidationEvent) {
	if s.publisher != nil {
		s.publisher.NotifyObservers(ctx, event)
	}
}

// presetName reports which named preset cfg corresponds to, if any.
func presetName(cfg quality.Config) string {
	for _, name := range quality.PresetNames() {
		if preset, err := quality.Preset(name); err == nil && preset == cfg {
			return name
		}
	}
	return "custom"
}
