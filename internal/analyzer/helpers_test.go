package analyzer

import (
	"image"
	"image/color"
)

// uniformImage creates a w x h image filled with a single color.
func uniformImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// checkerboard creates a w x h image of alternating block x block squares
// using two gray values.
func checkerboard(w, h, block int, a, b uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := a
			if (x/block+y/block)%2 == 1 {
				v = b
			}
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}
