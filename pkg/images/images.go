// Package images wraps the image primitives used by the build pipeline:
// decoding, aspect-filling resize, plain file copies and a dimension cache.
package images

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// Load opens and decodes an image, honoring EXIF orientation. Errors from
// opening the file are returned unwrapped so callers can distinguish
// unreadable sources from undecodable ones.
func Load(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// SaveFill scales and center-crops img so the result is exactly width x
// height regardless of the source aspect ratio, then encodes it to dst.
func SaveFill(img image.Image, dst string, width, height int) error {
	filled := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(filled, dst); err != nil {
		return fmt.Errorf("save %s: %w", dst, err)
	}
	return nil
}

// Copy copies src to dst byte for byte.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", dst, err)
	}
	return out.Close()
}
