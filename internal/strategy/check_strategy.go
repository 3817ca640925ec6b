package strategy

import (
	"fmt"
	"image"

	"go-image-quality/internal/analyzer"
	apperrors "go-image-quality/internal/errors"
	"go-image-quality/pkg/models"
)

// Metric names accepted by ForMetric.
const (
	MetricFull       = "full"
	MetricBlur       = "blur"
	MetricBrightness = "brightness"
	MetricContrast   = "contrast"
)

// CheckStrategy narrows a validation pass to a single metric, or runs the
// full composite verdict, without bypassing the shared analyzers.
type CheckStrategy interface {
	Check(img image.Image) models.MetricReport
	Name() string
}

// ForMetric resolves a strategy by metric name. An empty name maps to the
// full verdict.
func ForMetric(name string, validator analyzer.ImageValidator) (CheckStrategy, error) {
	switch name {
	case "", MetricFull:
		return &fullCheck{validator: validator}, nil
	case MetricBlur:
		return &blurCheck{validator: validator}, nil
	case MetricBrightness:
		return &brightnessCheck{validator: validator}, nil
	case MetricContrast:
		return &contrastCheck{validator: validator}, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown metric %q", name), nil)
	}
}

type fullCheck struct {
	validator analyzer.ImageValidator
}

func (s *fullCheck) Check(img image.Image) models.MetricReport {
	result := s.validator.Validate(img)
	return models.MetricReport{Metric: MetricFull, Quality: &result}
}

func (s *fullCheck) Name() string { return MetricFull }

type blurCheck struct {
	validator analyzer.ImageValidator
}

func (s *blurCheck) Check(img image.Image) models.MetricReport {
	result := s.validator.CheckBlur(img)
	return models.MetricReport{Metric: MetricBlur, Blur: &result}
}

func (s *blurCheck) Name() string { return MetricBlur }

type brightnessCheck struct {
	validator analyzer.ImageValidator
}

func (s *brightnessCheck) Check(img image.Image) models.MetricReport {
	result := s.validator.CheckBrightness(img)
	return models.MetricReport{Metric: MetricBrightness, Brightness: &result}
}

func (s *brightnessCheck) Name() string { return MetricBrightness }

type contrastCheck struct {
	validator analyzer.ImageValidator
}

func (s *contrastCheck) Check(img image.Image) models.MetricReport {
	result := s.validator.CheckContrast(img)
	return models.MetricReport{Metric: MetricContrast, Contrast: &result}
}

func (s *contrastCheck) Name() string { return MetricContrast }
