package services

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"photo-gallery/pkg/config"
	"photo-gallery/pkg/images"
	"photo-gallery/pkg/models"
)

// Renderer turns a per-collection output context into page bytes. The
// template engine behind it is the theme's business.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

// Assembler walks the collection tree and writes one rendered index.html
// per collection. It runs strictly after the image pipeline: widths and
// heights are read from the materialized output files.
type Assembler struct {
	cfg      *config.Config
	renderer Renderer
	dims     *images.DimensionCache
}

// NewAssembler creates an assembler using the given renderer.
func NewAssembler(cfg *config.Config, renderer Renderer) *Assembler {
	return &Assembler{
		cfg:      cfg,
		renderer: renderer,
		dims:     images.NewDimensionCache(),
	}
}

// WriteTree renders the whole tree rooted at collection into the output
// directory. Rendering errors are fatal to the build.
func (a *Assembler) WriteTree(collection *models.Collection) error {
	return a.writeTree(collection, []string{collection.Title()}, a.cfg.Output)
}

// writeTree recurses post-order over the children, keeping the breadcrumb
// trail in stack discipline: a child's title is pushed before its recursive
// call and popped right after, so the trail always lists exactly the
// ancestors of the page being written.
func (a *Assembler) writeTree(collection *models.Collection, trail []string, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("could not create %s: %w", outputDir, err)
	}

	for _, child := range collection.Collections {
		trail = append(trail, child.Title())
		if err := a.writeTree(child, trail, filepath.Join(outputDir, child.Name)); err != nil {
			return err
		}
		trail = trail[:len(trail)-1]
	}

	output, err := a.buildOutput(collection, trail, outputDir)
	if err != nil {
		return err
	}

	page, err := a.renderer.Render("index", output)
	if err != nil {
		return fmt.Errorf("could not render %s: %w", outputDir, err)
	}

	indexPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(indexPath, page, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", indexPath, err)
	}
	return nil
}

// buildOutput assembles the rendering context of one collection.
func (a *Assembler) buildOutput(collection *models.Collection, trail []string, outputDir string) (*models.Output, error) {
	imgs := a.contextImages(collection)
	sort.Slice(imgs, func(i, j int) bool {
		return naturalLess(imgs[i].Thumbnail, imgs[j].Thumbnail)
	})

	children, err := contextChildren(collection)
	if err != nil {
		return nil, err
	}
	sort.Slice(children, func(i, j int) bool {
		return naturalLess(children[j].Title, children[i].Title)
	})

	return &models.Output{
		Title:             collection.Title(),
		Description:       template.HTML(collection.Metadata.Description),
		Breadcrumbs:       BreadcrumbLinks(trail),
		Children:          children,
		Images:            imgs,
		Root:              a.rootPath(outputDir),
		ImageColumns:      a.cfg.Theme.ImageColumns,
		CollectionColumns: a.cfg.Theme.CollectionColumns,
	}, nil
}

// contextImages lists the collection's direct items with their output
// dimensions. Items whose output never materialized (the pipeline reported
// a failure for them) are left off the page rather than rendered broken.
func (a *Assembler) contextImages(collection *models.Collection) []models.Image {
	imgs := make([]models.Image, 0, len(collection.Items))
	for _, item := range collection.Items {
		width, height, err := a.dims.Dimensions(item.Output)
		if err != nil {
			log.Warnf("Leaving %s out of %s: %v", item.Source, collection.Name, err)
			continue
		}

		name := filepath.Base(item.Output)
		imgs = append(imgs, models.Image{
			Path:      name,
			Thumbnail: path.Join("thumbnails", name),
			Width:     width,
			Height:    height,
		})
	}
	return imgs
}

// contextChildren links the direct sub-collections. A child's thumbnail may
// be inherited from anywhere in its subtree, so the link is the thumbnail's
// path relative to this collection with "thumbnails" spliced in before the
// file name.
func contextChildren(collection *models.Collection) ([]models.Child, error) {
	children := make([]models.Child, 0, len(collection.Collections))
	for _, child := range collection.Collections {
		rel, err := filepath.Rel(collection.Path, child.Thumbnail)
		if err != nil {
			return nil, fmt.Errorf("thumbnail %s outside %s: %w", child.Thumbnail, collection.Path, err)
		}

		thumb := path.Join(filepath.ToSlash(filepath.Dir(rel)), "thumbnails", filepath.Base(rel))
		children = append(children, models.Child{
			Path:      child.Name,
			Thumbnail: thumb,
			Title:     child.Title(),
		})
	}
	return children, nil
}

// rootPath is the relative link from a page back to the output root, used
// for shared static assets.
func (a *Assembler) rootPath(outputDir string) string {
	rel, err := filepath.Rel(a.cfg.Output, outputDir)
	if err != nil || rel == "." {
		return "."
	}
	// RootRelative expects the path to include the root's own segment.
	return RootRelative(filepath.Join(filepath.Base(a.cfg.Output), rel))
}
