package compare

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/whiskycompiler/subraster-image-histogram/options"
)

type CLICmd struct {
	Reference string   `arg:"" help:"Reference image"`
	Files     []string `arg:"" help:"Images compared against the reference"`
	Global    bool     `help:"Compare whole histograms instead of bucket-sized fragments" default:"false"`
	options.Binning

	Out io.Writer `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.Binning.Validate(); err != nil {
		return err
	}

	ref, err := options.ImagePath(c.Reference)
	if err != nil {
		return err
	}
	c.Reference = ref

	return options.ImagePaths(c.Files)
}

func (c *CLICmd) Run(g options.Global) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	paths := append([]string{c.Reference}, c.Files...)
	bufs, err := loadAll(paths, c.MaxSide, g.Workers)
	if err != nil {
		return err
	}

	params := c.Params(g)
	hists, err := buildAll(bufs, params, g.Workers)
	if err != nil {
		return err
	}

	calc := g.Calculator()
	method := "fragmented"
	if c.Global {
		method = "global"
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "file\t%s distance\tsize\n", method)

	ref := hists[0]
	for i, h := range hists[1:] {
		var d float64
		if c.Global {
			d, err = calc.Bhattacharyya(ref, h)
		} else {
			d, err = calc.Fragmented(ref, h, params.BucketCount)
		}
		if err != nil {
			return fmt.Errorf("could not compare %q: %w", c.Files[i], err)
		}
		fmt.Fprintf(tw, "%s\t%.6f\t%s\n", filepath.Base(c.Files[i]), d, humanize.Comma(int64(len(h))))
	}

	slog.Debug("stats", "compared", len(c.Files), "buckets", params.BucketCount,
		"raster", params.RasterSideLength)
	return tw.Flush()
}
