package inspect

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"

	"github.com/whiskycompiler/subraster-image-histogram/histogram"
	"github.com/whiskycompiler/subraster-image-histogram/options"
	"github.com/whiskycompiler/subraster-image-histogram/raster"
)

type CLICmd struct {
	File   string `arg:"" help:"Image to bin"`
	Format string `help:"Output format" enum:"text,json" default:"text"`
	options.Binning

	Out io.Writer `kong:"-"`
}

type report struct {
	File             string `json:"file"`
	BucketCount      int    `json:"bucketCount"`
	Channels         int    `json:"channels"`
	RasterSideLength int    `json:"rasterSideLength"`
	Scale            string `json:"scale"`
	Counts           []int  `json:"counts"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Binning.Validate(); err != nil {
		return err
	}

	path, err := options.ImagePath(c.File)
	if err != nil {
		return err
	}
	c.File = path

	return nil
}

func (c *CLICmd) Run(g options.Global) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	buf, err := raster.Open(c.File, c.MaxSide)
	if err != nil {
		return err
	}

	params := c.Params(g)
	slog.Debug("binning", "file", c.File, "buckets", params.BucketCount, "raster", params.RasterSideLength,
		"scale", params.Scale)

	var writeErr error
	err = histogram.BuildFunc(buf.Pix, buf.Width, buf.Height, buf.Channels, params, func(counts []int) {
		if c.Format == "json" {
			writeErr = json.NewEncoder(out).Encode(report{
				File:             c.File,
				BucketCount:      params.BucketCount,
				Channels:         buf.Channels,
				RasterSideLength: params.RasterSideLength,
				Scale:            params.Scale.String(),
				Counts:           counts,
			})
			return
		}
		writeErr = writeText(out, params.Layout(buf.Channels), counts)
	})
	if err != nil {
		return fmt.Errorf("could not bin %q: %w", c.File, err)
	}
	if writeErr != nil {
		return fmt.Errorf("could not write histogram: %w", writeErr)
	}
	return nil
}

// writeText prints the histogram length followed by every bucket block,
// each introduced by a separator line naming its segment and channel.
func writeText(w io.Writer, layout histogram.Layout, counts []int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n\n", len(counts))

	for i, v := range counts {
		if i%layout.BucketCount == 0 {
			block := i / layout.BucketCount
			fmt.Fprintf(bw, "---- segment %d channel %d\n", block/layout.Channels, block%layout.Channels)
		}
		fmt.Fprintf(bw, "%d\n", v)
	}

	return bw.Flush()
}
