package options_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/whiskycompiler/subraster-image-histogram/distance"
	"github.com/whiskycompiler/subraster-image-histogram/histogram"
	"github.com/whiskycompiler/subraster-image-histogram/options"
)

func TestGlobal(t *testing.T) {
	t.Parallel()

	t.Run("Should default to the positional scale and zero collapse", func(t *testing.T) {
		t.Parallel()
		var g options.Global

		if g.Scale() != histogram.PositionalScale {
			t.Fatalf("expected %v, but got %v", histogram.PositionalScale, g.Scale())
		}
		if g.Calculator() != distance.Default {
			t.Fatalf("expected default calculator, but got %v", g.Calculator())
		}
	})

	t.Run("Should switch to the corrected variants", func(t *testing.T) {
		t.Parallel()
		g := options.Global{CorrectedBuckets: true, Saturate: true}

		if g.Scale() != histogram.ChannelBlocks {
			t.Fatalf("expected %v, but got %v", histogram.ChannelBlocks, g.Scale())
		}
		if g.Calculator().Clamp != distance.Saturate {
			t.Fatalf("expected saturating calculator, but got %v", g.Calculator())
		}
	})
}

func TestBinning(t *testing.T) {
	t.Parallel()

	t.Run("Should reject non-positive sizes", func(t *testing.T) {
		t.Parallel()
		for _, b := range []options.Binning{{Buckets: 0, Raster: 1}, {Buckets: 1, Raster: 0}, {Buckets: 1, Raster: 1, MaxSide: -1}} {
			if err := b.Validate(); err == nil {
				t.Fatalf("expected error for %+v", b)
			}
		}
	})

	t.Run("Should build histogram parameters", func(t *testing.T) {
		t.Parallel()
		b := options.Binning{Buckets: 12, Raster: 3}

		p := b.Params(options.Global{CorrectedBuckets: true})

		expected := histogram.Params{BucketCount: 12, RasterSideLength: 3, Scale: histogram.ChannelBlocks}
		if p != expected {
			t.Fatalf("expected %+v, but got %+v", expected, p)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("expected nil error, but got %v", err)
		}
	})
}

func TestImagePaths(t *testing.T) {
	t.Parallel()

	t.Run("Should make paths absolute", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "img.png")
		if err := os.WriteFile(path, []byte{0}, 0o600); err != nil {
			t.Fatalf("expected nil error, but got %v", err)
		}
		paths := []string{path}

		if err := options.ImagePaths(paths); err != nil {
			t.Fatalf("expected nil error, but got %v", err)
		}
		if !filepath.IsAbs(paths[0]) {
			t.Fatalf("expected absolute path, got %q", paths[0])
		}
	})

	t.Run("Should reject directories and missing files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		if _, err := options.ImagePath(dir); err == nil {
			t.Fatalf("expected error for directory %q", dir)
		}
		if _, err := options.ImagePath(filepath.Join(dir, "missing.png")); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})
}
