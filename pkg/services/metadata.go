package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"

	"photo-gallery/pkg/models"
)

// MetadataFile is the optional per-directory description file.
const MetadataFile = "index.md"

// headerPattern matches the leading "Key: value" lines of a metadata file.
var headerPattern = regexp.MustCompile(`^([[:alpha:]]+): (.+)$`)

// ResolveMetadata reads dir's index.md, if any, into a Metadata record.
// Without a metadata file the title falls back to the directory name. An
// unreadable metadata file is a fatal build error.
func ResolveMetadata(dir string) (models.Metadata, error) {
	meta := models.Metadata{Title: filepath.Base(dir)}

	path := filepath.Join(dir, MetadataFile)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return meta, fmt.Errorf("could not read %s: %w", path, err)
	}

	keys, body := splitMetadata(string(content))

	if title, ok := keys["Title"]; ok {
		meta.Title = title
	}

	if thumb, ok := keys["Thumbnail"]; ok {
		// The override is only honored when the file actually exists,
		// otherwise thumbnail resolution falls back to the items.
		resolved := filepath.Join(dir, thumb)
		if _, err := os.Stat(resolved); err == nil {
			meta.Thumbnail = resolved
		}
	}

	if body != "" {
		meta.Description = string(markdown.ToHTML([]byte(body), nil, nil))
	}

	return meta, nil
}

// splitMetadata separates the leading run of "Key: value" lines from the
// free-text body. The first non-matching line starts the body. Unknown keys
// are kept as-is, duplicates are last-value-wins.
func splitMetadata(content string) (map[string]string, string) {
	lines := strings.Split(content, "\n")
	keys := make(map[string]string)

	i := 0
	for ; i < len(lines); i++ {
		match := headerPattern.FindStringSubmatch(lines[i])
		if match == nil {
			break
		}
		keys[match[1]] = match[2]
	}

	body := strings.TrimSpace(strings.Join(lines[i:], "\n"))
	return keys, body
}
