package raster

import (
	"image"
	"image/color"
)

// Channel positions inside a pixel produced by FromImage. The order matches
// what most image decoders hand out for 3-channel data: blue, green, red.
const (
	Blue = iota
	Green
	Red

	Channels = 3
)

type Buffer struct {
	// Pix holds the pixels row by row, Channels bytes each. The pixel at
	// (x, y) starts at Pix[(y*Width+x)*Channels].
	Pix []byte
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int
	// Channels is the number of interleaved bytes per pixel.
	Channels int
}

func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
func (b *Buffer) Stride() int {
	return b.Width * b.Channels
}

func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride() + x*b.Channels
}

// FromImage converts img to a 3-channel blue, green, red buffer. Alpha is
// dropped, translucent pixels keep their non-premultiplied color.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	buf := NewBuffer(bounds.Dx(), bounds.Dy(), Channels)

	if nrgba, ok := img.(*image.NRGBA); ok {
		fromNRGBA(buf, nrgba)
		return buf
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix[i+Blue] = c.B
			buf.Pix[i+Green] = c.G
			buf.Pix[i+Red] = c.R
			i += Channels
		}
	}
	return buf
}

func fromNRGBA(buf *Buffer, img *image.NRGBA) {
	bounds := img.Rect
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < buf.Width; x++ {
			s := row[x*4 : x*4+4 : x*4+4]
			buf.Pix[i+Blue] = s[2]
			buf.Pix[i+Green] = s[1]
			buf.Pix[i+Red] = s[0]
			i += Channels
		}
	}
}
