package services

import (
	"path/filepath"
	"strings"

	"photo-gallery/pkg/models"
)

// BreadcrumbLinks turns a root-to-leaf trail of titles into navigation
// links. The entry at reverse-distance d from the current collection links
// d levels up: distance 0 is ".", distance 1 is "./..", and so on. Forward
// order is preserved.
func BreadcrumbLinks(names []string) []models.Breadcrumb {
	links := make([]models.Breadcrumb, len(names))
	for i, name := range names {
		distance := len(names) - 1 - i
		links[i] = models.Breadcrumb{
			Title: name,
			Path:  "." + strings.Repeat("/..", distance),
		}
	}
	return links
}

// RootRelative computes the relative path from an output directory back to
// the gallery output root: one ".." per segment below the root segment.
// The root itself maps to "." so asset links stay valid there.
func RootRelative(outputDir string) string {
	clean := filepath.ToSlash(filepath.Clean(outputDir))

	segments := 0
	for _, part := range strings.Split(clean, "/") {
		if part != "" && part != "." {
			segments++
		}
	}

	if segments <= 1 {
		return "."
	}

	parts := make([]string, segments-1)
	for i := range parts {
		parts[i] = ".."
	}
	return strings.Join(parts, "/")
}
