package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request presentation choices that do not change
// the resume or the resolved variant.
type RenderOptions struct {
	// Theme carries tokens, CSS variables and the asset resolver derived from
	// the variant's palette and font.
	Theme *theme.RendererConfig
	// Title overrides the document title. Renderers fall back to the resume
	// owner's name.
	Title string
	// Standalone wraps the fragment in a complete printable HTML page.
	Standalone bool
	// ChromeClasses overrides CSS class hooks on region and section wrappers,
	// keyed by hook name (e.g. "section", "region.grid").
	ChromeClasses map[string]string
}
