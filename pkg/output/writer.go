package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
)

// SaveImage encodes an image to disk, choosing the format from the file
// extension (.png or .bmp). Parent directories are created as needed.
func SaveImage(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		if err := bmp.Encode(file, img); err != nil {
			return fmt.Errorf("failed to encode BMP: %w", err)
		}
	case ".png":
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}

	return nil
}

// SaveThumbnail writes a PNG thumbnail that fits within maxDim x maxDim while
// preserving the image's aspect ratio.
func SaveThumbnail(img image.Image, path string, maxDim int) error {
	if maxDim < 1 {
		return fmt.Errorf("thumbnail size must be positive, got %d", maxDim)
	}

	thumb := resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
	return SaveImage(thumb, path)
}
