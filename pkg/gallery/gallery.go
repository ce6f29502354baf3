package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cvtemplates/components/catalog"
	"github.com/goliatone/go-cvtemplates/pkg/render"
	"github.com/goliatone/go-cvtemplates/pkg/renderers/html"
	"github.com/goliatone/go-cvtemplates/pkg/renderers/jsonview"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
	"github.com/goliatone/go-cvtemplates/pkg/variant"
)

const defaultRendererName = html.Name

// ErrNilContext is returned by Render when called with a nil context.
var ErrNilContext = errors.New("gallery: context is required")

// Option customises the gallery configuration.
type Option func(*Gallery)

// WithResume replaces the built-in sample. The record is validated when the
// gallery is constructed and Render fails if it is invalid.
func WithResume(record resume.ResumeRecord) Option {
	return func(g *Gallery) {
		g.record = record.Clone()
		g.external = true
	}
}

// WithCatalog replaces the embedded catalog entries.
func WithCatalog(entries []catalog.Entry) Option {
	return func(g *Gallery) {
		g.entries = append([]catalog.Entry{}, entries...)
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Gallery) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Gallery) {
		g.defaultRenderer = strings.TrimSpace(name)
	}
}

// WithThemeSelector replaces the selector used to resolve palette variants.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Gallery) {
		g.selector = selector
	}
}

// WithHTMLOptions configures the default HTML renderer. Ignored when a
// registry is injected.
func WithHTMLOptions(opts ...html.Option) Option {
	return func(g *Gallery) {
		g.htmlOptions = append(g.htmlOptions, opts...)
	}
}

// WithAssetPrefix mounts theme assets under prefix instead of /assets.
func WithAssetPrefix(prefix string) Option {
	return func(g *Gallery) {
		g.assetPrefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

// WithChromeClasses forwards class overrides to every render.
func WithChromeClasses(classes map[string]string) Option {
	return func(g *Gallery) {
		if len(classes) == 0 {
			return
		}
		g.chromeClasses = make(map[string]string, len(classes))
		for k, v := range classes {
			g.chromeClasses[k] = v
		}
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gallery) {
		g.logger = logger
	}
}

// Gallery renders catalog templates. It is safe for concurrent use once
// constructed.
type Gallery struct {
	record          resume.ResumeRecord
	external        bool
	entries         []catalog.Entry
	registry        *render.Registry
	defaultRenderer string
	selector        theme.ThemeSelector
	htmlOptions     []html.Option
	assetPrefix     string
	chromeClasses   map[string]string
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs a Gallery applying any provided options. Missing pieces use
// the sample resume, the embedded catalog, the cv theme selector and a
// registry holding the html and json renderers.
func New(options ...Option) *Gallery {
	g := &Gallery{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Gallery) applyDefaults() {
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	if g.external {
		if err := g.record.Validate(); err != nil {
			g.initialiseErr = fmt.Errorf("gallery: resume: %w", err)
		}
	} else {
		g.record = resume.Sample()
	}
	if g.entries == nil {
		entries, err := catalog.DefaultEntries()
		if err != nil {
			g.initialiseErr = errors.Join(g.initialiseErr, fmt.Errorf("gallery: load catalog: %w", err))
		}
		g.entries = entries
	}
	if g.selector == nil {
		g.selector = variant.NewSelector()
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		renderer, err := html.New(g.htmlOptions...)
		if err != nil {
			g.initialiseErr = errors.Join(g.initialiseErr, fmt.Errorf("gallery: default renderer: %w", err))
		} else {
			g.registry.MustRegister(renderer)
		}
		g.registry.MustRegister(jsonview.New())
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}
}

// Err reports a construction failure, such as an invalid external resume.
func (g *Gallery) Err() error {
	return g.initialiseErr
}

// Resume returns a copy of the record every template renders.
func (g *Gallery) Resume() resume.ResumeRecord {
	return g.record.Clone()
}

// Entries returns the catalog entries in id order.
func (g *Gallery) Entries() []catalog.Entry {
	return append([]catalog.Entry{}, g.entries...)
}

// Label returns the catalog name for id, or "Plantilla {id}".
func (g *Gallery) Label(id int) string {
	return catalog.Label(g.entries, id)
}

// Renderers lists the registered renderer names.
func (g *Gallery) Renderers() []string {
	if g.registry == nil {
		return nil
	}
	return g.registry.List()
}

// Request selects a template and output format.
type Request struct {
	ID int
	// Renderer names the renderer to use. Empty uses the default renderer.
	Renderer   string
	Standalone bool
	// Title overrides the document title.
	Title string
}

// Result is the rendered output for one template.
type Result struct {
	ID          int
	Label       string
	Variant     variant.Descriptor
	Renderer    string
	ContentType string
	Body        []byte
}

// Render resolves and renders one template.
func (g *Gallery) Render(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := g.initialiseErr; err != nil {
		return Result{}, err
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	d := variant.Resolve(req.ID)
	label := g.Label(req.ID)

	themeCfg, err := g.themeConfig(d)
	if err != nil {
		return Result{}, err
	}

	body, err := renderer.Render(ctx, render.Request{
		Resume:      g.record,
		Variant:     d,
		Composition: d.Composition(),
		Label:       label,
		Options: render.RenderOptions{
			Theme:         themeCfg,
			Title:         req.Title,
			Standalone:    req.Standalone,
			ChromeClasses: g.chromeClasses,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("gallery: render template %d: %w", req.ID, err)
	}

	g.logger.Debug("template rendered",
		slog.Int("id", req.ID),
		slog.String("renderer", renderer.Name()),
		slog.String("font", string(d.Font)),
		slog.String("palette", d.Palette.Name),
		slog.String("layout", d.Layout.String()),
		slog.Int("bytes", len(body)),
	)

	return Result{
		ID:          req.ID,
		Label:       label,
		Variant:     d,
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func (g *Gallery) themeConfig(d variant.Descriptor) (*theme.RendererConfig, error) {
	sel, err := g.selector.Select(variant.ThemeName, d.Palette.Name)
	if err != nil {
		return nil, fmt.Errorf("gallery: select theme: %w", err)
	}
	cfg := variant.ConfigFromSelection(sel, d)
	if g.assetPrefix != "" && cfg.AssetURL != nil {
		base := cfg.AssetURL
		prefix := g.assetPrefix
		cfg.AssetURL = func(key string) string {
			resolved := base(key)
			if resolved == "" || strings.Contains(resolved, "://") {
				return resolved
			}
			return prefix + strings.TrimPrefix(resolved, "/assets")
		}
	}
	return cfg, nil
}

func (g *Gallery) rendererFor(name string) (render.Renderer, error) {
	if g.registry == nil {
		return nil, errors.New("gallery: renderer registry is nil")
	}

	target := strings.TrimSpace(name)
	if target == "" {
		target = g.defaultRenderer
	}

	renderer, err := g.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("gallery: renderer %q: %w", target, err)
	}
	return renderer, nil
}
