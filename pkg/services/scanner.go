package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"photo-gallery/pkg/config"
	"photo-gallery/pkg/models"
)

// imageExtensions is the case-insensitive allow-list of image files that
// become gallery items.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// Scanner builds the in-memory collection tree from the input directory.
type Scanner struct {
	cfg *config.Config
}

// NewScanner returns a scanner for the given build configuration.
func NewScanner(cfg *config.Config) *Scanner {
	return &Scanner{cfg: cfg}
}

// Scan discovers the gallery tree rooted at the configured input directory.
// It returns nil when the tree contains no images at all.
func (s *Scanner) Scan() (*models.Collection, error) {
	if _, err := os.Stat(s.cfg.Input); err != nil {
		return nil, fmt.Errorf("input directory %s does not exist", s.cfg.Input)
	}
	return s.scanDir(s.cfg.Input)
}

// scanDir recursively classifies a directory's entries into items and child
// collections. Directories whose subtree holds no images are pruned: they
// yield (nil, nil) and never materialize in the tree.
func (s *Scanner) scanDir(dir string) (*models.Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %s: %w", dir, err)
	}

	var children []*models.Collection
	var items []models.Item

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			child, err := s.scanDir(path)
			if err != nil {
				return nil, err
			}
			if child != nil {
				children = append(children, child)
			}
			continue
		}

		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		item, err := s.newItem(path)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 0 && len(children) == 0 {
		return nil, nil
	}

	meta, err := ResolveMetadata(dir)
	if err != nil {
		return nil, err
	}

	thumbnail, err := resolveThumbnail(dir, meta, items, children)
	if err != nil {
		return nil, err
	}

	return &models.Collection{
		Path:        dir,
		Name:        filepath.Base(dir),
		Collections: children,
		Items:       items,
		Metadata:    meta,
		Thumbnail:   thumbnail,
	}, nil
}

// newItem derives the output and thumbnail paths of a source image by
// re-rooting it from the input root to the output root.
func (s *Scanner) newItem(source string) (models.Item, error) {
	rel, err := filepath.Rel(s.cfg.Input, source)
	if err != nil {
		return models.Item{}, fmt.Errorf("%s is not under %s: %w", source, s.cfg.Input, err)
	}

	output := filepath.Join(s.cfg.Output, rel)
	return models.Item{
		Source:    source,
		Output:    output,
		Thumbnail: filepath.Join(filepath.Dir(output), "thumbnails", filepath.Base(output)),
	}, nil
}

// resolveThumbnail picks the representative image of a collection, in strict
// priority order: the metadata override (already checked for existence), the
// first direct item, then the first child's resolved thumbnail. A collection
// reaching this point has items or children, so running out of candidates
// means a broken invariant and fails the build.
func resolveThumbnail(dir string, meta models.Metadata, items []models.Item, children []*models.Collection) (string, error) {
	switch {
	case meta.Thumbnail != "":
		return meta.Thumbnail, nil
	case len(items) > 0:
		return items[0].Source, nil
	case len(children) > 0:
		return children[0].Thumbnail, nil
	}
	return "", fmt.Errorf("no thumbnail candidate for non-empty collection %s", dir)
}
