package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-gallery/pkg/models"
)

// stubRenderer records the contexts it is asked to render.
type stubRenderer struct {
	contexts []*models.Output
}

func (r *stubRenderer) Render(name string, data any) ([]byte, error) {
	output := data.(*models.Output)
	r.contexts = append(r.contexts, output)
	return []byte("<html>" + output.Title + "</html>"), nil
}

func (r *stubRenderer) byTitle(title string) *models.Output {
	for _, ctx := range r.contexts {
		if ctx.Title == title {
			return ctx
		}
	}
	return nil
}

func TestWriteTreeRendersEveryCollection(t *testing.T) {
	cfg := testConfig(t)
	writeJPEG(t, filepath.Join(cfg.Input, "root.jpg"), 90, 60)
	writeJPEG(t, filepath.Join(cfg.Input, "a", "nested.jpg"), 90, 60)

	root, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	require.NotNil(t, root)
	NewPipeline(cfg).Run(FilterStale(root.AllItems()))

	renderer := &stubRenderer{}
	require.NoError(t, NewAssembler(cfg, renderer).WriteTree(root))

	assert.Len(t, renderer.contexts, 2)
	assert.FileExists(t, filepath.Join(cfg.Output, "index.html"))
	assert.FileExists(t, filepath.Join(cfg.Output, "a", "index.html"))

	page, err := os.ReadFile(filepath.Join(cfg.Output, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>input</html>", string(page))
}

func TestWriteTreeBreadcrumbs(t *testing.T) {
	cfg := testConfig(t)
	writeJPEG(t, filepath.Join(cfg.Input, "a", "b", "deep.jpg"), 90, 60)

	root, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	NewPipeline(cfg).Run(FilterStale(root.AllItems()))

	renderer := &stubRenderer{}
	require.NoError(t, NewAssembler(cfg, renderer).WriteTree(root))

	deep := renderer.byTitle("b")
	require.NotNil(t, deep)
	require.Equal(t, []models.Breadcrumb{
		{Title: "input", Path: "./../.."},
		{Title: "a", Path: "./.."},
		{Title: "b", Path: "."},
	}, deep.Breadcrumbs)
	assert.Equal(t, "../..", deep.Root)

	top := renderer.byTitle("input")
	require.NotNil(t, top)
	assert.Equal(t, ".", top.Root)
}

func TestWriteTreeSortsChildrenAndImages(t *testing.T) {
	cfg := testConfig(t)
	writeJPEG(t, filepath.Join(cfg.Input, "b.jpg"), 90, 60)
	writeJPEG(t, filepath.Join(cfg.Input, "a.jpg"), 90, 60)
	writeJPEG(t, filepath.Join(cfg.Input, "alpha", "1.jpg"), 90, 60)
	writeJPEG(t, filepath.Join(cfg.Input, "beta", "2.jpg"), 90, 60)

	root, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	NewPipeline(cfg).Run(FilterStale(root.AllItems()))

	renderer := &stubRenderer{}
	require.NoError(t, NewAssembler(cfg, renderer).WriteTree(root))

	top := renderer.byTitle("input")
	require.NotNil(t, top)

	// Images ascending by thumbnail path.
	require.Len(t, top.Images, 2)
	assert.Equal(t, "thumbnails/a.jpg", top.Images[0].Thumbnail)
	assert.Equal(t, "thumbnails/b.jpg", top.Images[1].Thumbnail)
	assert.Equal(t, 90, top.Images[0].Width)
	assert.Equal(t, 60, top.Images[0].Height)

	// Children descending by title.
	require.Len(t, top.Children, 2)
	assert.Equal(t, "beta", top.Children[0].Title)
	assert.Equal(t, "alpha", top.Children[1].Title)
	assert.Equal(t, "beta/thumbnails/2.jpg", top.Children[0].Thumbnail)
}

func TestWriteTreeChildThumbnailFromGrandchild(t *testing.T) {
	cfg := testConfig(t)
	writeJPEG(t, filepath.Join(cfg.Input, "top.jpg"), 90, 60)
	writeJPEG(t, filepath.Join(cfg.Input, "a", "b", "deep.jpg"), 90, 60)

	root, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	NewPipeline(cfg).Run(FilterStale(root.AllItems()))

	renderer := &stubRenderer{}
	require.NoError(t, NewAssembler(cfg, renderer).WriteTree(root))

	top := renderer.byTitle("input")
	require.NotNil(t, top)
	require.Len(t, top.Children, 1)

	// Child "a" has no direct images, its thumbnail comes from a/b.
	assert.Equal(t, "a/b/thumbnails/deep.jpg", top.Children[0].Thumbnail)
}

func TestWriteTreeExcludesFailedItems(t *testing.T) {
	cfg := testConfig(t)
	writeJPEG(t, filepath.Join(cfg.Input, "good.jpg"), 90, 60)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Input, "broken.jpg"), []byte("not an image"), 0644))

	root, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	summary := NewPipeline(cfg).Run(FilterStale(root.AllItems()))
	require.Equal(t, 1, summary.Failed)

	renderer := &stubRenderer{}
	require.NoError(t, NewAssembler(cfg, renderer).WriteTree(root))

	top := renderer.byTitle("input")
	require.NotNil(t, top)
	require.Len(t, top.Images, 1)
	assert.Equal(t, "good.jpg", top.Images[0].Path)
}

func TestWriteTreePassesThemeColumns(t *testing.T) {
	cfg := testConfig(t)
	writeJPEG(t, filepath.Join(cfg.Input, "test.jpg"), 90, 60)

	root, err := NewScanner(cfg).Scan()
	require.NoError(t, err)
	NewPipeline(cfg).Run(FilterStale(root.AllItems()))

	renderer := &stubRenderer{}
	require.NoError(t, NewAssembler(cfg, renderer).WriteTree(root))

	top := renderer.byTitle("input")
	require.NotNil(t, top)
	assert.Equal(t, 4, top.ImageColumns)
	assert.Equal(t, 3, top.CollectionColumns)
}
