package services

import (
	"os"

	"photo-gallery/pkg/models"
)

// IsStale reports whether output needs to be regenerated from source: true
// when output is missing or strictly older than source. A source that
// cannot be statted counts as stale so the pipeline surfaces the read error.
func IsStale(output, source string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return true
	}

	srcInfo, err := os.Stat(source)
	if err != nil {
		return true
	}

	return outInfo.ModTime().Before(srcInfo.ModTime())
}

// NeedsProcessing reports whether an item's thumbnail or full-size output is
// stale. The two artifacts go stale independently (a thumbnail can be
// deleted while the copy survives), so both are checked.
func NeedsProcessing(item models.Item) bool {
	return IsStale(item.Output, item.Source) || IsStale(item.Thumbnail, item.Source)
}

// FilterStale returns the items that need processing, preserving order.
func FilterStale(items []models.Item) []models.Item {
	var stale []models.Item
	for _, item := range items {
		if NeedsProcessing(item) {
			stale = append(stale, item)
		}
	}
	return stale
}
