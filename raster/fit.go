package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Fit scales img down so that neither side exceeds maxSide, keeping the
// aspect ratio. Images that already fit, or a non-positive maxSide, are
// returned unchanged.
func Fit(img image.Image, maxSide int) image.Image {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	limit := float64(maxSide)
	if maxSide <= 0 || (srcWidth <= limit && srcHeight <= limit) {
		return img
	}

	destWidth, destHeight := limit, limit
	if srcWidth > srcHeight {
		destHeight = math.Max(1, math.Round(limit*srcHeight/srcWidth))
	} else if srcHeight > srcWidth {
		destWidth = math.Max(1, math.Round(limit*srcWidth/srcHeight))
	}

	dest := image.NewNRGBA(image.Rect(0, 0, int(destWidth), int(destHeight)))
	draw.CatmullRom.Scale(dest, dest.Bounds(), img, srcBounds, draw.Src, nil)

	return dest
}
