package analyzer

import (
	"image/color"
	"math"
	"testing"

	"go-image-quality/pkg/models"
)

func TestBrightnessAnalyzer_UniformImages(t *testing.T) {
	tests := []struct {
		name  string
		gray  uint8
		level models.BrightnessLevel
	}{
		{"Near black", 10, models.BrightnessTooDark},
		{"Mid gray", 128, models.BrightnessOptimal},
		{"Near white", 250, models.BrightnessTooBright},
	}

	analyzer := NewBrightnessAnalyzer(40, 220)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := uniformImage(50, 50, color.RGBA{tt.gray, tt.gray, tt.gray, 255})

			result := analyzer.Analyze(img)

			if result.Level != tt.level {
				t.Errorf("Expected level %s, got %s", tt.level, result.Level)
			}
			// Uniform image: average equals the per-pixel luminance.
			expected := Luminance(tt.gray, tt.gray, tt.gray)
			if math.Abs(result.AverageBrightness-expected) > 1e-6 {
				t.Errorf("Expected average %f, got %f", expected, result.AverageBrightness)
			}
		})
	}
}

func TestBrightnessAnalyzer_BoundsAreInclusive(t *testing.T) {
	img := uniformImage(20, 20, color.RGBA{128, 128, 128, 255})
	average := NewBrightnessAnalyzer(0, 255).Analyze(img).AverageBrightness

	// An average exactly on either bound is still optimal.
	atMin := NewBrightnessAnalyzer(average, 255).Analyze(img)
	if atMin.Level != models.BrightnessOptimal {
		t.Errorf("Expected optimal when average == min bound, got %s", atMin.Level)
	}

	atMax := NewBrightnessAnalyzer(0, average).Analyze(img)
	if atMax.Level != models.BrightnessOptimal {
		t.Errorf("Expected optimal when average == max bound, got %s", atMax.Level)
	}
}

func TestBrightnessAnalyzer_EmptyImage(t *testing.T) {
	img := uniformImage(0, 0, color.RGBA{})

	result := NewBrightnessAnalyzer(40, 220).Analyze(img)

	if result.AverageBrightness != 0 {
		t.Errorf("Expected average 0 for empty image, got %f", result.AverageBrightness)
	}
	if result.Level != models.BrightnessTooDark {
		t.Errorf("Expected empty image to classify too dark, got %s", result.Level)
	}
}

func TestBrightnessAnalyzer_EchoesThresholds(t *testing.T) {
	img := uniformImage(10, 10, color.RGBA{100, 100, 100, 255})

	result := NewBrightnessAnalyzer(35, 230).Analyze(img)

	if result.MinThreshold != 35 || result.MaxThreshold != 230 {
		t.Errorf("Expected thresholds 35/230 echoed, got %f/%f", result.MinThreshold, result.MaxThreshold)
	}
	if !result.IsOptimal() {
		t.Error("Expected mid-gray to be optimal for 35/230 window")
	}
}
