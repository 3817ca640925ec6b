package models

// BrightnessLevel classifies exposure relative to the configured window.
type BrightnessLevel string

const (
	BrightnessTooDark   BrightnessLevel = "too_dark"
	BrightnessOptimal   BrightnessLevel = "optimal"
	BrightnessTooBright BrightnessLevel = "too_bright"
)

// BlurResult reports the sharpness verdict for one frame.
type BlurResult struct {
	IsBlurry   bool    `json:"is_blurry"`
	Variance   float64 `json:"variance"`
	Confidence float64 `json:"confidence"`
	Threshold  float64 `json:"threshold"`
}

// BrightnessResult reports the exposure verdict for one frame.
type BrightnessResult struct {
	Level             BrightnessLevel `json:"level"`
	AverageBrightness float64         `json:"average_brightness"`
	MinThreshold      float64         `json:"min_threshold"`
	MaxThreshold      float64         `json:"max_threshold"`
}

// IsOptimal reports whether exposure falls inside the configured window.
func (r BrightnessResult) IsOptimal() bool {
	return r.Level == BrightnessOptimal
}

// ContrastResult reports the tonal-spread verdict for one frame.
type ContrastResult struct {
	HasGoodContrast bool    `json:"has_good_contrast"`
	ContrastScore   float64 `json:"contrast_score"`
	Threshold       float64 `json:"threshold"`
}

// QualityResult combines the three metric verdicts into one pass/fail
// assessment. Issues lists the failing metrics in a fixed order: blur,
// then brightness, then contrast.
type QualityResult struct {
	IsValid    bool             `json:"is_valid"`
	Blur       BlurResult       `json:"blur"`
	Brightness BrightnessResult `json:"brightness"`
	Contrast   ContrastResult   `json:"contrast"`
	Issues     []string         `json:"issues,omitempty"`
	Summary    string           `json:"summary"`
}

// MetricReport carries the outcome of a single-metric check. Exactly one
// of the metric fields is set unless the full verdict was requested.
type MetricReport struct {
	Metric     string            `json:"metric"`
	Blur       *BlurResult       `json:"blur,omitempty"`
	Brightness *BrightnessResult `json:"brightness,omitempty"`
	Contrast   *ContrastResult   `json:"contrast,omitempty"`
	Quality    *QualityResult    `json:"quality,omitempty"`
}
