package analyzer

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"

	"go-image-quality/pkg/models"
)

// BlurDetector estimates sharpness from the population variance of the
// image's Laplacian response. Low variance means smoothed edges.
type BlurDetector struct {
	threshold float64
}

// NewBlurDetector creates a detector bound to a variance threshold.
func NewBlurDetector(threshold float64) *BlurDetector {
	return &BlurDetector{threshold: threshold}
}

// Detect convolves the luminance plane with the 3x3 Laplacian kernel
// [0 1 0; 1 -4 1; 0 1 0] over interior pixels and classifies the variance
// of the responses. A variance exactly equal to the threshold is sharp.
func (d *BlurDetector) Detect(img image.Image) models.BlurResult {
	plane, width, height := luminancePlane(img)
	variance := laplacianVariance(plane, width, height)

	return models.BlurResult{
		IsBlurry:   variance < d.threshold,
		Variance:   variance,
		Confidence: d.confidence(variance),
		Threshold:  d.threshold,
	}
}

// laplacianVariance evaluates the kernel only where all four neighbours
// exist. Border pixels are skipped rather than padded; planes narrower
// than 3 pixels in either dimension have no interior and score 0.
func laplacianVariance(plane []float64, width, height int) float64 {
	if width < 3 || height < 3 {
		return 0
	}

	responses := make([]float64, 0, (width-2)*(height-2))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			center := plane[i]
			top := plane[i-width]
			bottom := plane[i+width]
			left := plane[i-1]
			right := plane[i+1]
			responses = append(responses, top+bottom+left+right-4*center)
		}
	}

	return stat.PopVariance(responses, nil)
}

// confidence maps the distance between variance and threshold onto
// [0.5, 1.0]. It measures certainty of the verdict, not its direction.
func (d *BlurDetector) confidence(variance float64) float64 {
	distance := math.Abs(variance - d.threshold)
	normalized := math.Min(distance/(2*d.threshold), 1.0)
	return 0.5 + 0.5*normalized
}
