package render

import (
	"context"

	"github.com/goliatone/go-cvtemplates/pkg/layout"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
	"github.com/goliatone/go-cvtemplates/pkg/variant"
)

// Renderer converts a resume and its resolved variant into bytes (HTML, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, req Request) ([]byte, error)
}

// Request bundles everything a renderer needs for one template. Renderers
// must treat Resume as read-only.
type Request struct {
	Resume      resume.ResumeRecord
	Variant     variant.Descriptor
	Composition layout.Composition
	Label       string
	Options     RenderOptions
}
