// Package render executes the theme's pug templates against per-collection
// output contexts.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/eknkc/pug"
)

// PugRenderer compiles templates from the theme's templates directory.
// Compiled templates are cached: a build renders one template against many
// collections.
type PugRenderer struct {
	dir      string
	compiled map[string]*template.Template
}

// NewPugRenderer creates a renderer reading templates from dir.
func NewPugRenderer(dir string) *PugRenderer {
	return &PugRenderer{
		dir:      dir,
		compiled: make(map[string]*template.Template),
	}
}

// Render executes the named template (name.pug under the templates
// directory) with the given data.
func (r *PugRenderer) Render(name string, data any) ([]byte, error) {
	tpl, ok := r.compiled[name]
	if !ok {
		path := filepath.Join(r.dir, name+".pug")

		var err error
		tpl, err = pug.CompileFile(path, pug.Options{})
		if err != nil {
			return nil, fmt.Errorf("could not compile template %s: %w", path, err)
		}
		r.compiled[name] = tpl
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("could not render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
