package services

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"photo-gallery/pkg/images"
)

// CopyStatic copies the theme's static directory into the output root,
// keeping the directory's own name (theme/static becomes output/static).
// Files are skipped when the destination is already up to date.
func CopyStatic(staticDir, outputRoot string) error {
	prefix := filepath.Dir(staticDir)

	return filepath.WalkDir(staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(prefix, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(outputRoot, rel)

		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}

		if !IsStale(dest, path) {
			return nil
		}
		if err := images.Copy(path, dest); err != nil {
			return fmt.Errorf("could not copy asset %s: %w", path, err)
		}
		return nil
	})
}
