package histogram

import (
	"errors"
	"fmt"
)

// ValueRange is the number of distinct values of one 8-bit channel.
const ValueRange = 256

// MaxChannels is the number of channel positions the bucket mapping covers.
const MaxChannels = 3

var (
	ErrInvalidParams       = errors.New("invalid histogram parameters")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	ErrBufferSize          = errors.New("pixel buffer size does not match dimensions")
)

// BucketScale selects how a channel value is mapped to an offset inside its
// segment block.
type BucketScale int

const (
	// PositionalScale multiplies the bucket by the channel position:
	// offset = v * bucketCount * (c+1) / 256. Channel c covers
	// [0, (c+1)*bucketCount) of the segment block, so channels overlap.
	PositionalScale BucketScale = iota
	// ChannelBlocks gives every channel its own bucketCount-wide block:
	// offset = c*bucketCount + v*bucketCount/256.
	ChannelBlocks
)

func (s BucketScale) String() string {
	switch s {
	case PositionalScale:
		return "positional"
	case ChannelBlocks:
		return "channel-blocks"
	default:
		return fmt.Sprintf("BucketScale(%d)", int(s))
	}
}

// offset returns the position of value v of channel c inside a segment
// block. For c < MaxChannels the result is always below (c+1)*bucketCount.
func (s BucketScale) offset(v byte, c, bucketCount int) int {
	if s == ChannelBlocks {
		return c*bucketCount + int(v)*bucketCount/ValueRange
	}
	return int(v) * bucketCount * (c + 1) / ValueRange
}

type Params struct {
	BucketCount      int
	RasterSideLength int
	Scale            BucketScale
}

func (p Params) Validate() error {
	switch {
	case p.BucketCount < 1:
		return fmt.Errorf("%w: bucket count %d", ErrInvalidParams, p.BucketCount)
	case p.RasterSideLength < 1:
		return fmt.Errorf("%w: raster side length %d", ErrInvalidParams, p.RasterSideLength)
	case p.Scale != PositionalScale && p.Scale != ChannelBlocks:
		return fmt.Errorf("%w: bucket scale %v", ErrInvalidParams, p.Scale)
	}
	return nil
}

// Layout returns the shape of histograms built with p from images with the
// given channel count.
func (p Params) Layout(channels int) Layout {
	return Layout{
		BucketCount:      p.BucketCount,
		Channels:         channels,
		RasterSideLength: p.RasterSideLength,
	}
}

// Len is the histogram length for images with the given channel count.
func (p Params) Len(channels int) int {
	return p.Layout(channels).Len()
}
