package analyzer

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	apperrors "go-image-quality/internal/errors"
	"go-image-quality/pkg/models"
	"go-image-quality/pkg/quality"
)

// Issue messages surface to capture UIs, so they stay instructional.
const (
	blurIssueMessage     = "Image is blurry. Hold the camera steady and try again."
	darkIssueMessage     = "Image is too dark. Take the photo in more light."
	brightIssueMessage   = "Image is too bright. Avoid strong sunlight or flash."
	contrastIssueMessage = "Image has low contrast. Use a plainer background and even lighting."
	acceptableSummary    = "Image quality is acceptable."
)

type imageQualityValidator struct {
	cfg        quality.Config
	blur       *BlurDetector
	brightness *BrightnessAnalyzer
	contrast   *ContrastAnalyzer
}

// NewImageQualityValidator binds one detector per metric to cfg, once, at
// construction rather than per call.
func NewImageQualityValidator(cfg quality.Config) ImageValidator {
	return &imageQualityValidator{
		cfg:        cfg,
		blur:       NewBlurDetector(cfg.BlurThreshold),
		brightness: NewBrightnessAnalyzer(cfg.MinBrightness, cfg.MaxBrightness),
		contrast:   NewContrastAnalyzer(cfg.MinContrast),
	}
}

// NewDefaultValidator creates a validator with the default preset.
func NewDefaultValidator() ImageValidator {
	return NewImageQualityValidator(quality.Default())
}

func (v *imageQualityValidator) Validate(img image.Image) models.QualityResult {
	blur := v.blur.Detect(img)
	brightness := v.brightness.Analyze(img)
	contrast := v.contrast.Analyze(img)

	issues := collectIssues(blur, brightness, contrast)
	result := models.QualityResult{
		IsValid:    len(issues) == 0,
		Blur:       blur,
		Brightness: brightness,
		Contrast:   contrast,
		Issues:     issues,
	}
	if result.IsValid {
		result.Summary = acceptableSummary
	} else {
		result.Summary = strings.Join(issues, "; ")
	}
	return result
}

func (v *imageQualityValidator) ValidateBytes(data []byte) (models.QualityResult, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return models.QualityResult{}, apperrors.NewInvalidImageError("unable to decode image data", err)
	}
	return v.Validate(img), nil
}

func (v *imageQualityValidator) CheckBlur(img image.Image) models.BlurResult {
	return v.blur.Detect(img)
}

func (v *imageQualityValidator) CheckBrightness(img image.Image) models.BrightnessResult {
	return v.brightness.Analyze(img)
}

func (v *imageQualityValidator) CheckContrast(img image.Image) models.ContrastResult {
	return v.contrast.Analyze(img)
}

func (v *imageQualityValidator) Config() quality.Config {
	return v.cfg
}

// collectIssues orders failing metrics as blur, brightness, contrast,
// regardless of how the individual checks were invoked.
func collectIssues(blur models.BlurResult, brightness models.BrightnessResult, contrast models.ContrastResult) []string {
	var issues []string
	if blur.IsBlurry {
		issues = append(issues, blurIssueMessage)
	}
	switch brightness.Level {
	case models.BrightnessTooDark:
		issues = append(issues, darkIssueMessage)
	case models.BrightnessTooBright:
		issues = append(issues, brightIssueMessage)
	}
	if !contrast.HasGoodContrast {
		issues = append(issues, contrastIssueMessage)
	}
	return issues
}
