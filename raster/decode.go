package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format and converts it to a pixel
// buffer. When maxSide is positive the image is first scaled down to fit.
func Decode(r io.Reader, maxSide int) (*Buffer, string, error) {
	img, imgType, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}

	return FromImage(Fit(img, maxSide)), imgType, nil
}

func Open(path string, maxSide int) (*Buffer, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	buf, imgType, err := Decode(imgFile, maxSide)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	slog.Debug("decoded image", "file", path, "format", imgType,
		"width", buf.Width, "height", buf.Height)
	return buf, nil
}
