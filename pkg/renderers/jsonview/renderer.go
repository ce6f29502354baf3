// Package jsonview renders the resolved variant of a template as JSON. It is
// the machine-readable counterpart of the HTML renderer.
package jsonview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-cvtemplates/pkg/layout"
	"github.com/goliatone/go-cvtemplates/pkg/render"
	"github.com/goliatone/go-cvtemplates/pkg/variant"
)

// Name is the registry key of the JSON renderer.
const Name = "json"

// Descriptor is the payload written for one template.
type Descriptor struct {
	ID       int               `json:"id"`
	Label    string            `json:"label,omitempty"`
	Font     Font              `json:"font"`
	Palette  variant.Palette   `json:"palette"`
	Header   string            `json:"header"`
	Layout   Layout            `json:"layout"`
	Sections []string          `json:"sections"`
	CSSVars  map[string]string `json:"cssVars,omitempty"`
}

type Font struct {
	Key    string `json:"key"`
	Family string `json:"family"`
	Stack  string `json:"stack"`
}

type Layout struct {
	Arrangement int    `json:"arrangement"`
	Name        string `json:"name"`
}

type Option func(*Renderer)

// WithIndent pretty-prints the payload with the given indent.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer emits Descriptor JSON.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

func New(opts ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "application/json; charset=utf-8" }

func (r *Renderer) Render(ctx context.Context, req render.Request) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(Describe(req)); err != nil {
		return nil, fmt.Errorf("jsonview: encode descriptor: %w", err)
	}
	return buf.Bytes(), nil
}

// Describe builds the payload for a request. Languages is listed only when
// the resume has languages, matching what the HTML renderer emits.
func Describe(req render.Request) Descriptor {
	d := req.Variant
	comp := req.Composition
	if comp.Root.Kind == "" {
		comp = layout.Compose(d.Layout)
	}

	sections := make([]string, 0, 6)
	for _, s := range comp.Sections() {
		if s == layout.SectionLanguages && !req.Resume.HasLanguages() {
			continue
		}
		sections = append(sections, string(s))
	}

	out := Descriptor{
		ID:    d.ID,
		Label: req.Label,
		Font: Font{
			Key:    string(d.Font),
			Family: d.Font.Family(),
			Stack:  d.Font.Stack(),
		},
		Palette:  d.Palette,
		Header:   d.Header.String(),
		Layout:   Layout{Arrangement: int(comp.Arrangement), Name: comp.Name},
		Sections: sections,
	}
	if req.Options.Theme != nil && len(req.Options.Theme.CSSVars) > 0 {
		out.CSSVars = make(map[string]string, len(req.Options.Theme.CSSVars))
		for k, v := range req.Options.Theme.CSSVars {
			out.CSSVars[k] = v
		}
	}
	return out
}
