package compare

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/whiskycompiler/subraster-image-histogram/histogram"
	"github.com/whiskycompiler/subraster-image-histogram/parallel"
	"github.com/whiskycompiler/subraster-image-histogram/raster"
)

// loadAll decodes every image on a worker pool. Failures are logged per file
// and reported as one error once all files were tried.
func loadAll(paths []string, maxSide, workers int) ([]*raster.Buffer, error) {
	bufs := make([]*raster.Buffer, len(paths))

	var errCount atomic.Uint64
	parallel.Each(workers, len(paths), func(i int) {
		buf, err := raster.Open(paths[i], maxSide)
		if err != nil {
			errCount.Add(1)
			slog.Error("could not load image", "file", paths[i], "error", err)
			return
		}
		bufs[i] = buf
	})

	if n := errCount.Load(); n > 0 {
		return nil, fmt.Errorf("error loading %d images", n)
	}
	return bufs, nil
}

func buildAll(bufs []*raster.Buffer, params histogram.Params, workers int) ([]histogram.Histogram, error) {
	hists := make([]histogram.Histogram, len(bufs))
	errs := make([]error, len(bufs))

	parallel.Each(workers, len(bufs), func(i int) {
		hists[i], errs[i] = histogram.BuildBuffer(bufs[i], params)
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return hists, nil
}
