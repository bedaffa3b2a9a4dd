package banner

import (
	"image"
	"image/color"
)

// buildStripeImage renders one stripe tile: a parallelogram slanting
// from bottom-left to top-right, filled with the foreground color on a
// transparent background. Tiled edge to edge the bands read as a
// continuous diagonal hazard pattern.
func buildStripeImage(fg color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, StripeTileWidth, StripeTileHeight))
	for y := 0; y < StripeTileHeight; y++ {
		// Left edge runs from (0, bottom) to (16, top).
		x0 := (StripeTileHeight - 1 - y) * StripeBandWidth / StripeTileHeight
		for x := x0; x < x0+StripeBandWidth && x < StripeTileWidth; x++ {
			img.SetNRGBA(x, y, fg)
		}
	}
	return img
}
