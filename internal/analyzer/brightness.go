package analyzer

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"go-image-quality/pkg/models"
)

// BrightnessAnalyzer classifies exposure from the mean luminance of the
// whole frame.
type BrightnessAnalyzer struct {
	min float64
	max float64
}

// NewBrightnessAnalyzer creates an analyzer bound to an exposure window.
func NewBrightnessAnalyzer(min, max float64) *BrightnessAnalyzer {
	return &BrightnessAnalyzer{min: min, max: max}
}

// Analyze averages per-pixel luminance over every pixel and classifies the
// result. Comparisons are strict, so an average sitting exactly on either
// bound is still optimal. An empty image averages to 0.
func (a *BrightnessAnalyzer) Analyze(img image.Image) models.BrightnessResult {
	plane, _, _ := luminancePlane(img)

	var average float64
	if len(plane) > 0 {
		average = stat.Mean(plane, nil)
	}

	level := models.BrightnessOptimal
	switch {
	case average < a.min:
		level = models.BrightnessTooDark
	case average > a.max:
		level = models.BrightnessTooBright
	}

	return models.BrightnessResult{
		Level:             level,
		AverageBrightness: average,
		MinThreshold:      a.min,
		MaxThreshold:      a.max,
	}
}
