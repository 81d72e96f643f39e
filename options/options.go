package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/whiskycompiler/subraster-image-histogram/distance"
	"github.com/whiskycompiler/subraster-image-histogram/histogram"
)

// Global holds the flags shared by every command. It is bound into each
// command's Run method.
type Global struct {
	Workers          int  `help:"Number of images processed in parallel, 0 uses all CPUs" default:"0"`
	Verbose          bool `help:"Enable debug logging" short:"v"`
	CorrectedBuckets bool `help:"Give every channel its own bucket block instead of scaling buckets by channel position" default:"false"`
	Saturate         bool `help:"Report fully disjoint histograms as distance 1 instead of 0" default:"false"`
}

func (g Global) Scale() histogram.BucketScale {
	if g.CorrectedBuckets {
		return histogram.ChannelBlocks
	}
	return histogram.PositionalScale
}

func (g Global) Calculator() distance.Calculator {
	if g.Saturate {
		return distance.Calculator{Clamp: distance.Saturate}
	}
	return distance.Default
}

// Binning holds the histogram shape flags of a command.
type Binning struct {
	Buckets int `help:"Buckets per channel" default:"16"`
	Raster  int `help:"Raster side length, the image is split into raster x raster segments" default:"14"`
	MaxSide int `help:"Scale images down so neither side exceeds this many pixels, 0 keeps the original size" default:"0"`
}

func (b Binning) Validate() error {
	switch {
	case b.Buckets < 1:
		return fmt.Errorf("invalid bucket count: %d", b.Buckets)
	case b.Raster < 1:
		return fmt.Errorf("invalid raster side length: %d", b.Raster)
	case b.MaxSide < 0:
		return fmt.Errorf("invalid max side: %d", b.MaxSide)
	}
	return nil
}

func (b Binning) Params(g Global) histogram.Params {
	return histogram.Params{
		BucketCount:      b.Buckets,
		RasterSideLength: b.Raster,
		Scale:            g.Scale(),
	}
}

// ImagePath resolves path to an absolute path of an existing regular file.
func ImagePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(abs); err == nil && !info.Mode().IsRegular() {
			err = fmt.Errorf("not a regular file")
		}
	}
	if err != nil {
		return "", fmt.Errorf("invalid image path %q: %w", path, err)
	}
	return abs, nil
}

func ImagePaths(paths []string) error {
	for i, p := range paths {
		abs, err := ImagePath(p)
		if err != nil {
			return err
		}
		paths[i] = abs
	}
	return nil
}
