package iconset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Dir is the output directory, relative to the working directory.
const Dir = "icons"

// Sizes are the square icon resolutions shipped with the extension.
var Sizes = []int{16, 32, 48, 128}

func FileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

func Path(dir string, size int) string {
	return filepath.Join(dir, FileName(size))
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// WritePNG encodes img as PNG into path, replacing any existing file.
// Opaque images are stored as 8-bit RGB.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	err = imaging.Encode(f, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
