package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/whiskycompiler/subraster-image-histogram/compare"
	"github.com/whiskycompiler/subraster-image-histogram/inspect"
	"github.com/whiskycompiler/subraster-image-histogram/options"
)

type cli struct {
	options.Global

	Histogram inspect.CLICmd   `cmd:"" help:"Print the subraster histogram of an image"`
	Compare   compare.CLICmd   `cmd:"" help:"Compare images against a reference image"`
	Sweep     compare.SweepCmd `cmd:"" help:"Compare every image pair over a range of bucket counts and raster sizes"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("subraster"),
		kong.Description("Subraster color histograms and fragmented Bhattacharyya distances"),
		kong.UsageOnError(),
	)

	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	slog.Debug("running", "command", kctx.Command(), "workers", c.Workers)

	kctx.FatalIfErrorf(kctx.Run(c.Global))
}
