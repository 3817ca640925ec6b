package factory

import (
	"go-image-quality/internal/analyzer"
	"go-image-quality/internal/config"
	apperrors "go-image-quality/internal/errors"
	"go-image-quality/internal/storage"
	"go-image-quality/pkg/models"
	"go-image-quality/pkg/quality"
)

// ValidatorFactory builds validators for arbitrary preset and override
// combinations. Validators are cheap to construct, so each request gets a
// fresh one bound to its resolved config.
type ValidatorFactory interface {
	// ConfigFor resolves a preset name and applies optional overrides,
	// re-validating the merged result.
	ConfigFor(preset string, overrides *models.ThresholdOverrides) (quality.Config, error)

	// ValidatorFor builds a validator for the given config.
	ValidatorFor(cfg quality.Config) analyzer.ImageValidator
}

type validatorFactory struct{}

// NewValidatorFactory creates a new validator factory
func NewValidatorFactory() ValidatorFactory {
	return &validatorFactory{}
}

func (f *validatorFactory) ConfigFor(preset string, overrides *models.ThresholdOverrides) (quality.Config, error) {
	cfg, err := quality.Preset(preset)
	if err != nil {
		return quality.Config{}, err
	}
	if overrides == nil {
		return cfg, nil
	}

	blur := cfg.BlurThreshold
	minB := cfg.MinBrightness
	maxB := cfg.MaxBrightness
	minC := cfg.MinContrast
	if overrides.BlurThreshold != nil {
		blur = *overrides.BlurThreshold
	}
	if overrides.MinBrightness != nil {
		minB = *overrides.MinBrightness
	}
	if overrides.MaxBrightness != nil {
		maxB = *overrides.MaxBrightness
	}
	if overrides.MinContrast != nil {
		minC = *overrides.MinContrast
	}
	return quality.New(blur, minB, maxB, minC)
}

func (f *validatorFactory) ValidatorFor(cfg quality.Config) analyzer.ImageValidator {
	return analyzer.NewImageQualityValidator(cfg)
}

// NewImageFetcher creates the storage fetcher selected by the server
// configuration.
func NewImageFetcher(cfg *config.Config) (storage.ImageFetcher, error) {
	switch cfg.StorageBackend {
	case config.BackendHTTP:
		return storage.NewHTTPImageFetcher(cfg.ImageFetchTimeout), nil
	case config.BackendAzure:
		return storage.NewAzureImageFetcher(cfg.AzureAccountName, cfg.AzureAccountKey)
	default:
		return nil, apperrors.NewInternalError("unsupported storage backend: "+cfg.StorageBackend, nil)
	}
}
