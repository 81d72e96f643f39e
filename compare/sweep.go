package compare

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/whiskycompiler/subraster-image-histogram/histogram"
	"github.com/whiskycompiler/subraster-image-histogram/options"
)

type SweepCmd struct {
	Files   []string `arg:"" help:"Images to compare pairwise"`
	Params  []string `help:"Bucket count and raster side length pairs as BUCKETSxRASTER" default:"32x14,24x14,18x14,16x14,14x14,12x14,10x14,8x14"`
	MaxSide int      `help:"Scale images down so neither side exceeds this many pixels, 0 keeps the original size" default:"0"`

	Out   io.Writer   `kong:"-"`
	Sizes []sweepSize `kong:"-"`
}

type sweepSize struct {
	Buckets, Raster int
}

func (c *SweepCmd) Validate(kctx *kong.Context) error {
	if len(c.Files) < 2 {
		return fmt.Errorf("need at least two images, got %d", len(c.Files))
	}
	if c.MaxSide < 0 {
		return fmt.Errorf("invalid max side: %d", c.MaxSide)
	}

	sizes, err := parseSizes(c.Params)
	if err != nil {
		return err
	}
	c.Sizes = sizes

	return options.ImagePaths(c.Files)
}

func parseSizes(params []string) ([]sweepSize, error) {
	sizes := make([]sweepSize, 0, len(params))
	for _, p := range params {
		var s sweepSize
		n, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(p)), "%dx%d", &s.Buckets, &s.Raster)
		if err != nil {
			return nil, fmt.Errorf("could not read sweep parameter %q: %w", p, err)
		} else if n < 2 {
			return nil, fmt.Errorf("insufficient sweep parameter fields in %q: %d", p, n)
		}
		if s.Buckets < 1 || s.Raster < 1 {
			return nil, fmt.Errorf("invalid sweep parameter %q", p)
		}
		sizes = append(sizes, s)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sweep parameters given")
	}
	return sizes, nil
}

// Run decodes every image once, then for each sweep size bins all images and
// prints the fragmented distance of every image pair on one table row.
func (c *SweepCmd) Run(g options.Global) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	if c.Sizes == nil {
		sizes, err := parseSizes(c.Params)
		if err != nil {
			return err
		}
		c.Sizes = sizes
	}

	bufs, err := loadAll(c.Files, c.MaxSide, g.Workers)
	if err != nil {
		return err
	}

	type pair struct{ a, b int }
	var pairs []pair
	header := []string{"buckets", "raster"}
	for a := range c.Files {
		for b := a + 1; b < len(c.Files); b++ {
			pairs = append(pairs, pair{a, b})
			header = append(header, filepath.Base(c.Files[a])+"~"+filepath.Base(c.Files[b]))
		}
	}
	header = append(header, "size")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.Debug)
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	calc := g.Calculator()
	for _, s := range c.Sizes {
		params := histogram.Params{BucketCount: s.Buckets, RasterSideLength: s.Raster, Scale: g.Scale()}
		hists, err := buildAll(bufs, params, g.Workers)
		if err != nil {
			return err
		}

		row := []string{fmt.Sprint(s.Buckets), fmt.Sprint(s.Raster)}
		for _, p := range pairs {
			d, err := calc.Fragmented(hists[p.a], hists[p.b], s.Buckets)
			if err != nil {
				return fmt.Errorf("could not compare %q and %q: %w", c.Files[p.a], c.Files[p.b], err)
			}
			row = append(row, fmt.Sprintf("%.6f", d))
		}
		row = append(row, humanize.Comma(int64(len(hists[0]))))
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")

		slog.Debug("sweep step done", "buckets", s.Buckets, "raster", s.Raster)
	}

	slog.Info("stats", "images", len(c.Files), "pairs", len(pairs), "steps", len(c.Sizes))
	return tw.Flush()
}
