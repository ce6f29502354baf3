package html

import (
	"context"
	"fmt"
	stdhtml "html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-cvtemplates/pkg/layout"
	"github.com/goliatone/go-cvtemplates/pkg/render"
	rendertemplate "github.com/goliatone/go-cvtemplates/pkg/render/template"
	"github.com/goliatone/go-cvtemplates/pkg/render/template/gotemplate"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
	"github.com/goliatone/go-cvtemplates/pkg/variant"
)

// Name is the registry key of the HTML renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide document.tmpl and one section_*.tmpl per section.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the CSS inlined into standalone documents.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
	}
}

// Renderer produces one print-oriented HTML document per template.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), stylesheet: defaultStylesheet()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithSetName("cv-html"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, stylesheet: cfg.stylesheet}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render walks the composition, rendering each section slot through its
// template and wrapping regions in layout containers. The resume is cloned
// before any template sees it.
func (r *Renderer) Render(ctx context.Context, req render.Request) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	record := req.Resume.Clone()
	comp := req.Composition
	if comp.Root.Kind == "" {
		comp = layout.Compose(req.Variant.Layout)
	}

	chrome := resolveChrome(req.Options.ChromeClasses)
	view := sectionView{
		record:      normalizeLists(record),
		links:       contactLinks(record.Contact),
		headerStyle: req.Variant.Header.String(),
		chrome:      chrome,
	}

	var body strings.Builder
	if err := r.writeRegion(&body, comp.Root, view); err != nil {
		return nil, err
	}

	themeCfg := req.Options.Theme
	if themeCfg == nil {
		themeCfg = variant.RendererConfig(req.Variant)
	}

	data := map[string]any{
		"standalone":   req.Options.Standalone,
		"title":        documentTitle(record, req),
		"font_url":     themeCfg.Tokens["font-url"],
		"stylesheet":   r.stylesheet,
		"classes":      chrome,
		"id":           req.Variant.ID,
		"font":         string(req.Variant.Font),
		"palette":      req.Variant.Palette.Name,
		"header_style": view.headerStyle,
		"layout":       int(comp.Arrangement),
		"layout_name":  comp.Name,
		"css_vars":     cssVarsStyle(themeCfg.CSSVars),
		"body":         body.String(),
	}

	result, err := r.templates.RenderTemplate("document", data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render document: %w", err)
	}
	return []byte(result), nil
}

type sectionView struct {
	record      resume.ResumeRecord
	links       []contactLink
	headerStyle string
	chrome      map[string]string
}

func (v sectionView) data(s layout.Section) map[string]any {
	return map[string]any{
		"section":      string(s),
		"label":        SectionLabel(s),
		"resume":       v.record,
		"links":        v.links,
		"header_style": v.headerStyle,
		"classes":      v.chrome,
	}
}

func (r *Renderer) writeRegion(b *strings.Builder, region layout.Region, view sectionView) error {
	fmt.Fprintf(b, "<div class=\"%s\" data-region=\"%s\">\n",
		stdhtml.EscapeString(regionClasses(region, view.chrome)),
		stdhtml.EscapeString(string(region.Kind)))
	for _, child := range region.Children {
		if child.Region != nil {
			if err := r.writeRegion(b, *child.Region, view); err != nil {
				return err
			}
			continue
		}
		if err := r.writeSection(b, child.Section, view); err != nil {
			return err
		}
	}
	b.WriteString("</div>\n")
	return nil
}

func (r *Renderer) writeSection(b *strings.Builder, s layout.Section, view sectionView) error {
	if s == "" {
		return nil
	}
	if s == layout.SectionLanguages && !view.record.HasLanguages() {
		return nil
	}
	if _, err := r.templates.RenderTemplate(templateName(s), view.data(s), b); err != nil {
		return fmt.Errorf("html renderer: render section %q: %w", s, err)
	}
	return nil
}

func documentTitle(record resume.ResumeRecord, req render.Request) string {
	if title := strings.TrimSpace(req.Options.Title); title != "" {
		return title
	}
	if label := strings.TrimSpace(req.Label); label != "" {
		return record.Name + " · " + label
	}
	return record.Name
}

// normalizeLists replaces nil lists with empty ones so templates always
// iterate a list.
func normalizeLists(r resume.ResumeRecord) resume.ResumeRecord {
	if r.Experience == nil {
		r.Experience = []resume.Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Bullets == nil {
			r.Experience[i].Bullets = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []resume.Education{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	return r
}
