package analyzer

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	apperrors "go-image-quality/internal/errors"
	"go-image-quality/pkg/models"
	"go-image-quality/pkg/quality"
)

func TestValidate_Checkerboard(t *testing.T) {
	// 100x100 with alternating 10x10 blocks at luminance 200 and 80: sharp
	// edges, mid exposure, strong tonal spread.
	img := checkerboard(100, 100, 10, 200, 80)

	result := NewDefaultValidator().Validate(img)

	if result.Blur.IsBlurry {
		t.Errorf("Expected sharp verdict, variance %f", result.Blur.Variance)
	}
	if result.Brightness.Level != models.BrightnessOptimal {
		t.Errorf("Expected optimal exposure, got %s", result.Brightness.Level)
	}
	if !result.Contrast.HasGoodContrast {
		t.Errorf("Expected good contrast, score %f", result.Contrast.ContrastScore)
	}
	if !result.IsValid {
		t.Errorf("Expected valid verdict, issues: %v", result.Issues)
	}
	if len(result.Issues) != 0 {
		t.Errorf("Expected no issues, got %v", result.Issues)
	}
	if result.Summary != acceptableSummary {
		t.Errorf("Unexpected summary: %q", result.Summary)
	}
}

func TestValidate_TooDark(t *testing.T) {
	img := uniformImage(50, 50, color.RGBA{10, 10, 10, 255})

	result := NewDefaultValidator().Validate(img)

	if result.Brightness.Level != models.BrightnessTooDark {
		t.Errorf("Expected too_dark, got %s", result.Brightness.Level)
	}
	if result.IsValid {
		t.Error("Expected invalid verdict for dark image")
	}

	foundDark := false
	for _, issue := range result.Issues {
		if strings.Contains(issue, "too dark") {
			foundDark = true
		}
	}
	if !foundDark {
		t.Errorf("Expected a dark-related issue, got %v", result.Issues)
	}
}

func TestValidate_TooBright(t *testing.T) {
	img := uniformImage(50, 50, color.RGBA{250, 250, 250, 255})

	result := NewDefaultValidator().Validate(img)

	if result.Brightness.Level != models.BrightnessTooBright {
		t.Errorf("Expected too_bright, got %s", result.Brightness.Level)
	}
	if result.IsValid {
		t.Error("Expected invalid verdict for bright image")
	}
}

func TestValidate_FlatGray(t *testing.T) {
	img := uniformImage(50, 50, color.RGBA{128, 128, 128, 255})

	result := NewDefaultValidator().Validate(img)

	if result.Contrast.ContrastScore != 0 {
		t.Errorf("Expected contrast score 0, got %f", result.Contrast.ContrastScore)
	}
	if result.Contrast.HasGoodContrast {
		t.Error("Expected poor contrast for flat gray image")
	}
	if result.IsValid {
		t.Error("Expected invalid verdict for flat gray image")
	}

	foundContrast := false
	for _, issue := range result.Issues {
		if strings.Contains(issue, "low contrast") {
			foundContrast = true
		}
	}
	if !foundContrast {
		t.Errorf("Expected a low-contrast issue, got %v", result.Issues)
	}
}

func TestValidate_IssueOrdering(t *testing.T) {
	// A flat dark image fails every metric; issues must list blur first,
	// then brightness, then contrast.
	img := uniformImage(50, 50, color.RGBA{10, 10, 10, 255})

	result := NewDefaultValidator().Validate(img)

	if len(result.Issues) != 3 {
		t.Fatalf("Expected 3 issues, got %d: %v", len(result.Issues), result.Issues)
	}
	if !strings.Contains(result.Issues[0], "blurry") {
		t.Errorf("Expected blur issue first, got %q", result.Issues[0])
	}
	if !strings.Contains(result.Issues[1], "too dark") {
		t.Errorf("Expected brightness issue second, got %q", result.Issues[1])
	}
	if !strings.Contains(result.Issues[2], "low contrast") {
		t.Errorf("Expected contrast issue third, got %q", result.Issues[2])
	}
	if result.Summary != strings.Join(result.Issues, "; ") {
		t.Errorf("Expected summary to join issues, got %q", result.Summary)
	}
}

func TestValidateBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checkerboard(100, 100, 10, 200, 80)); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	result, err := NewDefaultValidator().ValidateBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("Unexpected decode error: %v", err)
	}
	if !result.IsValid {
		t.Errorf("Expected valid verdict for encoded checkerboard, issues: %v", result.Issues)
	}
}

func TestValidateBytes_Undecodable(t *testing.T) {
	_, err := NewDefaultValidator().ValidateBytes([]byte("not an image"))

	if err == nil {
		t.Fatal("Expected error for undecodable bytes")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeInvalidImage) {
		t.Errorf("Expected invalid_image error, got %v", err)
	}
}

func TestSingleMetricChecksMatchValidate(t *testing.T) {
	cfg := quality.CardScanning()
	validator := NewImageQualityValidator(cfg)
	img := checkerboard(60, 60, 10, 70, 210)

	full := validator.Validate(img)

	if got := validator.CheckBlur(img); got != full.Blur {
		t.Errorf("CheckBlur = %+v, Validate blur = %+v", got, full.Blur)
	}
	if got := validator.CheckBrightness(img); got != full.Brightness {
		t.Errorf("CheckBrightness = %+v, Validate brightness = %+v", got, full.Brightness)
	}
	if got := validator.CheckContrast(img); got != full.Contrast {
		t.Errorf("CheckContrast = %+v, Validate contrast = %+v", got, full.Contrast)
	}
	if validator.Config() != cfg {
		t.Error("Expected validator to echo its construction config")
	}
}
