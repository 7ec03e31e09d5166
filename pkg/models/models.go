package models

import "html/template"

// Item is a single source image together with its derived output locations.
// Items are created once during the tree scan and never mutated afterwards.
type Item struct {
	// Source is the path of the original image under the input root.
	Source string
	// Output mirrors Source under the output root.
	Output string
	// Thumbnail lives in a thumbnails/ directory next to Output.
	Thumbnail string
}

// Metadata holds the parsed contents of a collection's index.md file.
type Metadata struct {
	// Title of the collection, defaults to the directory name.
	Title string
	// Description as rendered HTML, possibly empty.
	Description string
	// Thumbnail is an explicit override for the collection thumbnail.
	// Empty when no override was given or the referenced file is missing.
	Thumbnail string
}

// Collection is a directory node in the gallery tree. A collection exists
// only if it or one of its descendants contains at least one image.
type Collection struct {
	// Path is the source directory of this collection.
	Path string
	// Name is the directory base name, used for the output directory.
	Name string
	// Collections holds the non-empty child collections in scan order.
	Collections []*Collection
	// Items holds the direct image items in scan order.
	Items []Item
	// Metadata for this collection.
	Metadata Metadata
	// Thumbnail is the resolved representative image (a source path).
	Thumbnail string
}

// Title returns the display title of the collection.
func (c *Collection) Title() string {
	return c.Metadata.Title
}

// AllItems returns all items of this collection and its descendants,
// depth-first with direct items first. Safe to call repeatedly.
func (c *Collection) AllItems() []Item {
	items := make([]Item, 0, len(c.Items))
	items = append(items, c.Items...)

	for _, child := range c.Collections {
		items = append(items, child.AllItems()...)
	}

	return items
}

// Breadcrumb is one entry of the navigation trail on a collection page.
type Breadcrumb struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Image is one picture on a rendered collection page. Paths are relative
// to the collection's own output directory.
type Image struct {
	Path      string `json:"path"`
	Thumbnail string `json:"thumbnail"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Child is a sub-collection link on a rendered collection page.
type Child struct {
	Path      string `json:"path"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
}

// Output is the rendering context handed to the template engine for one
// collection page. It is assembled fresh for every page and not persisted.
type Output struct {
	Title             string        `json:"title"`
	Description       template.HTML `json:"description"`
	Breadcrumbs       []Breadcrumb  `json:"breadcrumbs"`
	Children          []Child       `json:"children"`
	Images            []Image       `json:"images"`
	Root              string        `json:"root"`
	ImageColumns      int           `json:"image_columns"`
	CollectionColumns int           `json:"collection_columns"`
}
