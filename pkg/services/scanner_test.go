package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEmptyDirIsNoCollection(t *testing.T) {
	cfg := testConfig(t)

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	assert.Nil(t, collection)
}

func TestScanNonImageFilesArePruned(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "foo.bar"), nil, 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	assert.Nil(t, collection)
}

func TestScanEmptySubdirsArePruned(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Input, "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "test.jpg"), nil, 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Empty(t, collection.Collections)
}

func TestScanSingleImage(t *testing.T) {
	cfg := testConfig(t)
	source := filepath.Join(cfg.Input, "test.jpg")
	require.NoError(t, os.WriteFile(source, nil, 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)

	require.Len(t, collection.Items, 1)
	item := collection.Items[0]
	assert.Equal(t, source, item.Source)
	assert.Equal(t, filepath.Join(cfg.Output, "test.jpg"), item.Output)
	assert.Equal(t, filepath.Join(cfg.Output, "thumbnails", "test.jpg"), item.Thumbnail)
	assert.Equal(t, source, collection.Thumbnail)
}

func TestScanUppercaseExtension(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "TEST.JPEG"), nil, 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Len(t, collection.Items, 1)
}

func TestScanThumbnailOverride(t *testing.T) {
	cfg := testConfig(t)
	for _, name := range []string{"1.jpg", "2.jpg", "3.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, MetadataFile), []byte("Thumbnail: 2.jpg"), 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Equal(t, filepath.Join(cfg.Input, "2.jpg"), collection.Thumbnail)
}

func TestScanThumbnailOverrideFallsBackToFirstItem(t *testing.T) {
	cfg := testConfig(t)
	source := filepath.Join(cfg.Input, "test.jpg")
	require.NoError(t, os.WriteFile(source, nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, MetadataFile), []byte("Thumbnail: doesnotexist.jpg"), 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Equal(t, source, collection.Thumbnail)
}

func TestScanThumbnailInheritedFromChild(t *testing.T) {
	cfg := testConfig(t)
	subdir := filepath.Join(cfg.Input, "a")
	source := filepath.Join(subdir, "test.jpg")
	writeJPEG(t, source, 30, 20)

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)

	assert.Empty(t, collection.Items)
	require.Len(t, collection.Collections, 1)
	assert.Equal(t, source, collection.Collections[0].Thumbnail)
	assert.Equal(t, collection.Collections[0].Thumbnail, collection.Thumbnail)
}

func TestAllItemsFlattensDepthFirst(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "root.jpg"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Input, "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "a", "direct.jpg"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "a", "b", "nested.jpg"), nil, 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)

	items := collection.AllItems()
	require.Len(t, items, 3)
	assert.Equal(t, "root.jpg", filepath.Base(items[0].Source))
	assert.Equal(t, "direct.jpg", filepath.Base(items[1].Source))
	assert.Equal(t, "nested.jpg", filepath.Base(items[2].Source))
}

func TestScanReadsRootMetadata(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "test.jpg"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, MetadataFile), []byte("Title: foo\n\nHello."), 0644))

	collection, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Equal(t, "foo", collection.Title())
	assert.Contains(t, collection.Metadata.Description, "Hello.")
}

func TestScanMissingInputIsError(t *testing.T) {
	cfg := testConfig(t)
	cfg.Input = filepath.Join(cfg.Input, "doesnotexist")

	_, err := NewScanner(cfg).Scan()
	assert.Error(t, err)
}
