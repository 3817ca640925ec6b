package analyzer

import "image"

// Rec. 601 luma coefficients. Every analyzer derives brightness from this
// exact weighting so their scores stay comparable across metrics.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// Luminance converts one pixel's 8-bit RGB channels into a perceptual
// brightness scalar in [0, 255]. Alpha is ignored.
func Luminance(r, g, b uint8) float64 {
	return lumaRed*float64(r) + lumaGreen*float64(g) + lumaBlue*float64(b)
}

// luminancePlane samples every pixel of img into a row-major plane of
// luminance values. The stdlib reports 16-bit channels, so they are
// narrowed back to 8 bits before weighting.
func luminancePlane(img image.Image) (plane []float64, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, width, height
	}

	plane = make([]float64, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			plane = append(plane, Luminance(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return plane, width, height
}
