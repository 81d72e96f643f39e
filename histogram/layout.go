package histogram

// Layout describes how a flat histogram is indexed: one block per raster
// segment, each holding Channels blocks of BucketCount buckets.
type Layout struct {
	BucketCount      int
	Channels         int
	RasterSideLength int
}

func (l Layout) Segments() int {
	return l.RasterSideLength * l.RasterSideLength
}

// SegmentLen is the number of buckets in one segment block.
func (l Layout) SegmentLen() int {
	return l.BucketCount * l.Channels
}

func (l Layout) Len() int {
	return l.SegmentLen() * l.Segments()
}

// Segment returns the row-major raster cell index for the cell at column sx
// and row sy.
func (l Layout) Segment(sx, sy int) int {
	return sx + sy*l.RasterSideLength
}

func (l Layout) Index(segment, channel, bucket int) int {
	return segment*l.SegmentLen() + channel*l.BucketCount + bucket
}

// Block returns the bucketCount-wide window of h belonging to the given
// segment and channel. The slice aliases h.
func (l Layout) Block(h Histogram, segment, channel int) []int {
	start := l.Index(segment, channel, 0)
	return h[start : start+l.BucketCount : start+l.BucketCount]
}
