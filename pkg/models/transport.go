package models

// ValidationRequest asks for a full quality verdict on a remote image.
type ValidationRequest struct {
	URL        string              `json:"url" binding:"required,url"`
	Preset     string              `json:"preset,omitempty"`
	Thresholds *ThresholdOverrides `json:"thresholds,omitempty"`
}

// ThresholdOverrides replaces individual preset thresholds. Nil fields
// keep the preset value; the merged config is re-validated as a whole.
type ThresholdOverrides struct {
	BlurThreshold *float64 `json:"blur_threshold,omitempty"`
	MinBrightness *float64 `json:"min_brightness,omitempty"`
	MaxBrightness *float64 `json:"max_brightness,omitempty"`
	MinContrast   *float64 `json:"min_contrast,omitempty"`
}

// BatchValidationRequest asks for verdicts on several images under one
// shared configuration.
type BatchValidationRequest struct {
	URLs       []string            `json:"urls" binding:"required,min=1"`
	Preset     string              `json:"preset,omitempty"`
	Thresholds *ThresholdOverrides `json:"thresholds,omitempty"`
}

// CheckRequest asks for a single-metric check on a remote image.
type CheckRequest struct {
	URL        string              `json:"url" binding:"required,url"`
	Metric     string              `json:"metric" binding:"required"`
	Preset     string              `json:"preset,omitempty"`
	Thresholds *ThresholdOverrides `json:"thresholds,omitempty"`
}

// ValidationResponse is the transport envelope around a QualityResult.
type ValidationResponse struct {
	ImageURL          string        `json:"image_url,omitempty"`
	Preset            string        `json:"preset,omitempty"`
	Timestamp         string        `json:"timestamp"`
	ProcessingTimeSec float64       `json:"processing_time_sec"`
	Result            QualityResult `json:"result"`
}

// BatchEntry pairs one URL of a batch with its outcome. Either Response
// or Error is set, never both.
type BatchEntry struct {
	URL      string              `json:"url"`
	Response *ValidationResponse `json:"response,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
