package analyzer

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"go-image-quality/pkg/models"
)

// ContrastAnalyzer scores tonal spread as the population standard
// deviation of the luminance plane.
type ContrastAnalyzer struct {
	min float64
}

// NewContrastAnalyzer creates an analyzer bound to a minimum spread.
func NewContrastAnalyzer(min float64) *ContrastAnalyzer {
	return &ContrastAnalyzer{min: min}
}

// Analyze computes the luminance standard deviation over every pixel. The
// comparison is inclusive: a score exactly equal to the threshold passes.
// An empty image scores 0.
func (a *ContrastAnalyzer) Analyze(img image.Image) models.ContrastResult {
	plane, _, _ := luminancePlane(img)

	var score float64
	if len(plane) > 0 {
		score = stat.PopStdDev(plane, nil)
	}

	return models.ContrastResult{
		HasGoodContrast: score >= a.min,
		ContrastScore:   score,
		Threshold:       a.min,
	}
}
