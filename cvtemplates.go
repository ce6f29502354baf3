// Package cvtemplates renders a gallery of resume templates. Every template
// shows the same resume; its id alone picks the font, palette, header style
// and layout arrangement.
//
// Most callers only need GenerateHTML or NewGallery. The subpackages expose
// each stage (variant resolution, layout composition, renderers) for callers
// that want to plug in their own pieces.
package cvtemplates

import (
	"context"

	"github.com/goliatone/go-cvtemplates/pkg/gallery"
	"github.com/goliatone/go-cvtemplates/pkg/render"
	"github.com/goliatone/go-cvtemplates/pkg/variant"
)

// Descriptor aliases variant.Descriptor.
type Descriptor = variant.Descriptor

// RenderOptions aliases render.RenderOptions for callers wiring renderers
// directly.
type RenderOptions = render.RenderOptions

// NewGallery exposes the gallery constructor from the top-level module.
func NewGallery(options ...gallery.Option) *gallery.Gallery {
	return gallery.New(options...)
}

// Resolve returns the visual descriptor for a template id.
func Resolve(id int) Descriptor {
	return variant.Resolve(id)
}

// GenerateHTML renders template id as a standalone printable HTML page. It is
// the simplest entry point for callers that just want a document.
func GenerateHTML(ctx context.Context, id int, options ...gallery.Option) ([]byte, error) {
	g := gallery.New(options...)
	res, err := g.Render(ctx, gallery.Request{
		ID:         id,
		Renderer:   "html",
		Standalone: true,
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}
