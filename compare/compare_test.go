package compare

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/whiskycompiler/subraster-image-histogram/options"
)

func writeImage(t *testing.T, dir, name string, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("expected nil error, but got %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("expected nil error, but got %v", err)
	}
	return path
}

func TestParseSizes(t *testing.T) {
	t.Parallel()

	t.Run("Should read bucket and raster pairs", func(t *testing.T) {
		t.Parallel()

		sizes, err := parseSizes([]string{"32x14", " 8X2 "})

		if err != nil {
			t.Fatalf("expected nil error, but got %v", err)
		}
		expected := []sweepSize{{32, 14}, {8, 2}}
		if !reflect.DeepEqual(expected, sizes) {
			t.Fatalf("expected %v, but got %v", expected, sizes)
		}
	})

	t.Run("Should fail on malformed pairs", func(t *testing.T) {
		t.Parallel()
		for _, params := range [][]string{{"32"}, {"x14"}, {"0x14"}, {"16x0"}, {}} {
			if _, err := parseSizes(params); err == nil {
				t.Fatalf("expected error for %q", params)
			}
		}
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("Should list the distance of every file to the reference", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		ref := writeImage(t, dir, "ref.png", color.RGBA{R: 200, G: 200, B: 200, A: 255})
		same := writeImage(t, dir, "same.png", color.RGBA{R: 200, G: 200, B: 200, A: 255})
		other := writeImage(t, dir, "other.png", color.RGBA{R: 10, G: 250, B: 90, A: 255})
		var out bytes.Buffer
		cmd := &CLICmd{
			Reference: ref,
			Files:     []string{same, other},
			Binning:   options.Binning{Buckets: 4, Raster: 2},
			Out:       &out,
		}

		err := cmd.Run(options.Global{Workers: 2, Saturate: true})

		if err != nil {
			t.Fatalf("expected nil error, but got %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines but got %d: %q", len(lines), out.String())
		}
		if !strings.HasPrefix(lines[1], "same.png") || !strings.Contains(lines[1], "0.000000") {
			t.Fatalf("expected zero distance for same.png, got %q", lines[1])
		}
		// no bucket is shared, every fragment saturates
		if !strings.HasPrefix(lines[2], "other.png") || !strings.Contains(lines[2], "1.000000") {
			t.Fatalf("expected distance 1 for other.png, got %q", lines[2])
		}
	})

	t.Run("Should fail on undecodable files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		ref := writeImage(t, dir, "ref.png", color.White)
		bad := filepath.Join(dir, "bad.png")
		if err := os.WriteFile(bad, []byte("nope"), 0o600); err != nil {
			t.Fatalf("expected nil error, but got %v", err)
		}
		cmd := &CLICmd{
			Reference: ref,
			Files:     []string{bad},
			Binning:   options.Binning{Buckets: 4, Raster: 2},
			Out:       &bytes.Buffer{},
		}

		if err := cmd.Run(options.Global{}); err == nil {
			t.Fatalf("expected error for undecodable image")
		}
	})
}

func TestSweep(t *testing.T) {
	t.Parallel()

	t.Run("Should print one row per sweep size", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		a := writeImage(t, dir, "a.png", color.RGBA{R: 200, G: 180, B: 250, A: 255})
		b := writeImage(t, dir, "b.png", color.RGBA{R: 200, G: 180, B: 250, A: 255})
		c := writeImage(t, dir, "c.png", color.Black)
		var out bytes.Buffer
		cmd := &SweepCmd{
			Files:  []string{a, b, c},
			Params: []string{"4x1", "8x2"},
			Out:    &out,
		}

		err := cmd.Run(options.Global{Workers: 1, CorrectedBuckets: true})

		if err != nil {
			t.Fatalf("expected nil error, but got %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines but got %d: %q", len(lines), out.String())
		}
		for _, name := range []string{"a.png~b.png", "a.png~c.png", "b.png~c.png", "size"} {
			if !strings.Contains(lines[0], name) {
				t.Fatalf("expected header to contain %q, got %q", name, lines[0])
			}
		}
		// 8 buckets * 3 channels * 2 * 2 segments
		if !strings.Contains(lines[2], "96") {
			t.Fatalf("expected histogram size 96 in %q", lines[2])
		}
	})
}
