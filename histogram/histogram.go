// Package histogram bins the pixels of an image into a subraster histogram:
// the image is divided into a square grid of segments and every segment gets
// its own per-channel value histogram, all stored in one flat slice.
package histogram

import (
	"fmt"
	"image"

	"github.com/whiskycompiler/subraster-image-histogram/raster"
)

// Histogram is a flat sequence of bucket counts, ordered segment by segment.
// See Layout for the index arithmetic.
type Histogram []int

func (h Histogram) Sum() int {
	sum := 0
	for _, v := range h {
		sum += v
	}
	return sum
}

// Build bins every pixel of pix, a row-major buffer of width*height pixels
// with channels interleaved bytes each, and returns the new histogram. The
// caller owns the result.
func Build(pix []byte, width, height, channels int, p Params) (Histogram, error) {
	if err := check(pix, width, height, channels, p); err != nil {
		return nil, err
	}
	return build(pix, width, height, channels, p), nil
}

// BuildFunc computes the same histogram as Build and hands it to fn. The
// slice is only valid for the duration of the call; fn must copy anything it
// wants to keep.
func BuildFunc(pix []byte, width, height, channels int, p Params, fn func(counts []int)) error {
	if err := check(pix, width, height, channels, p); err != nil {
		return err
	}
	fn(build(pix, width, height, channels, p))
	return nil
}

func BuildBuffer(buf *raster.Buffer, p Params) (Histogram, error) {
	return Build(buf.Pix, buf.Width, buf.Height, buf.Channels, p)
}

func BuildImage(img image.Image, p Params) (Histogram, error) {
	return BuildBuffer(raster.FromImage(img), p)
}

func check(pix []byte, width, height, channels int, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidParams, width, height)
	}
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}
	if want := width * height * channels; len(pix) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(pix), want)
	}
	return nil
}

func build(pix []byte, width, height, channels int, p Params) Histogram {
	layout := p.Layout(channels)
	h := make(Histogram, layout.Len())
	side := p.RasterSideLength

	i := 0
	for y := 0; y < height; y++ {
		sy := y * side / height
		for x := 0; x < width; x++ {
			start := layout.Segment(x*side/width, sy) * layout.SegmentLen()
			for c := 0; c < channels; c++ {
				h[start+p.Scale.offset(pix[i+c], c, p.BucketCount)]++
			}
			i += channels
		}
	}

	return h
}
