package quality

import (
	"fmt"

	apperrors "go-image-quality/internal/errors"
)

// Config is an immutable bundle of quality thresholds. Build one through
// New or a preset constructor; the With methods return re-validated
// copies and never mutate the receiver.
type Config struct {
	BlurThreshold float64 `json:"blur_threshold"`
	MinBrightness float64 `json:"min_brightness"`
	MaxBrightness float64 `json:"max_brightness"`
	MinContrast   float64 `json:"min_contrast"`
}

// New builds a validated Config. Construction fails atomically when any
// invariant is violated; no partially-built config is ever returned.
func New(blurThreshold, minBrightness, maxBrightness, minContrast float64) (Config, error) {
	cfg := Config{
		BlurThreshold: blurThreshold,
		MinBrightness: minBrightness,
		MaxBrightness: maxBrightness,
		MinContrast:   minContrast,
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BlurThreshold <= 0 {
		return apperrors.NewConfigError(
			fmt.Sprintf("blur threshold must be positive, got %g", c.BlurThreshold), nil)
	}
	if c.MinBrightness < 0 || c.MaxBrightness > 255 {
		return apperrors.NewConfigError(
			fmt.Sprintf("brightness bounds must lie within [0, 255], got [%g, %g]",
				c.MinBrightness, c.MaxBrightness), nil)
	}
	if c.MinBrightness >= c.MaxBrightness {
		return apperrors.NewConfigError(
			fmt.Sprintf("min brightness %g must be below max brightness %g",
				c.MinBrightness, c.MaxBrightness), nil)
	}
	if c.MinContrast < 0 {
		return apperrors.NewConfigError(
			fmt.Sprintf("min contrast must not be negative, got %g", c.MinContrast), nil)
	}
	return nil
}

// Preset names accepted by Preset and the transport layer.
const (
	PresetDefault          = "default"
	PresetCardScanning     = "cardScanning"
	PresetDocumentScanning = "documentScanning"
	PresetPhotoCapture     = "photoCapture"
	PresetRelaxed          = "relaxed"
	PresetStrict           = "strict"
)

// Default returns the general-purpose threshold set.
func Default() Config {
	return Config{BlurThreshold: 100, MinBrightness: 40, MaxBrightness: 220, MinContrast: 30}
}

// CardScanning returns thresholds tuned for ID and payment cards.
func CardScanning() Config {
	return Config{BlurThreshold: 80, MinBrightness: 35, MaxBrightness: 230, MinContrast: 40}
}

// DocumentScanning returns thresholds tuned for full-page documents.
func DocumentScanning() Config {
	return Config{BlurThreshold: 120, MinBrightness: 45, MaxBrightness: 215, MinContrast: 55}
}

// PhotoCapture returns thresholds tuned for handheld photo capture.
func PhotoCapture() Config {
	return Config{BlurThreshold: 200, MinBrightness: 30, MaxBrightness: 235, MinContrast: 45}
}

// Relaxed returns the most permissive threshold set.
func Relaxed() Config {
	return Config{BlurThreshold: 50, MinBrightness: 25, MaxBrightness: 240, MinContrast: 30}
}

// Strict returns the most demanding threshold set.
func Strict() Config {
	return Config{BlurThreshold: 250, MinBrightness: 50, MaxBrightness: 200, MinContrast: 65}
}

// Preset resolves a preset by name. An empty name maps to the default.
func Preset(name string) (Config, error) {
	switch name {
	case "", PresetDefault:
		return Default(), nil
	case PresetCardScanning:
		return CardScanning(), nil
	case PresetDocumentScanning:
		return DocumentScanning(), nil
	case PresetPhotoCapture:
		return PhotoCapture(), nil
	case PresetRelaxed:
		return Relaxed(), nil
	case PresetStrict:
		return Strict(), nil
	default:
		return Config{}, apperrors.NewConfigError(fmt.Sprintf("unknown preset %q", name), nil)
	}
}

// PresetNames lists every accepted preset name.
func PresetNames() []string {
	return []string{
		PresetDefault,
		PresetCardScanning,
		PresetDocumentScanning,
		PresetPhotoCapture,
		PresetRelaxed,
		PresetStrict,
	}
}

// WithBlurThreshold returns a copy with the blur threshold replaced.
func (c Config) WithBlurThreshold(v float64) (Config, error) {
	c.BlurThreshold = v
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithBrightnessBounds returns a copy with the exposure window replaced.
func (c Config) WithBrightnessBounds(min, max float64) (Config, error) {
	c.MinBrightness = min
	c.MaxBrightness = max
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithMinContrast returns a copy with the contrast floor replaced.
func (c Config) WithMinContrast(v float64) (Config, error) {
	c.MinContrast = v
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
