package analyzer

import (
	"image"

	"go-image-quality/pkg/models"
	"go-image-quality/pkg/quality"
)

// ImageValidator is the single entry point composing the three metric
// analyzers under one shared configuration. A validator builds its
// analyzers once, at construction, and recomputes every verdict from the
// supplied pixel grid on each call.
type ImageValidator interface {
	// Validate runs all three analyzers against an already-decoded grid.
	Validate(img image.Image) models.QualityResult

	// ValidateBytes decodes encoded image data at most once, then runs
	// the same checks as Validate.
	ValidateBytes(data []byte) (models.QualityResult, error)

	// Single-metric checks reuse the analyzer instances behind Validate.
	CheckBlur(img image.Image) models.BlurResult
	CheckBrightness(img image.Image) models.BrightnessResult
	CheckContrast(img image.Image) models.ContrastResult

	// Config returns the threshold bundle the validator was built with.
	Config() quality.Config
}
