package server

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/goliatone/go-cvtemplates/components/catalog"
	"github.com/goliatone/go-cvtemplates/pkg/render/template/gotemplate"
	"github.com/goliatone/go-cvtemplates/pkg/variant"
)

//go:embed views/*.tmpl
var viewsFS embed.FS

// GalleryHeading is the title of the gallery page.
const GalleryHeading = "40 Plantillas de CV 2025"

// Pages renders the page shells around gallery output. The server uses it
// per request; the static exporter uses it once.
type Pages struct {
	engine *gotemplate.Engine
}

// GalleryLinks controls the URLs written into the gallery page.
type GalleryLinks struct {
	Stylesheet string
	Detail     func(id int) string
}

// NewPages parses the embedded views.
func NewPages() (*Pages, error) {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, fmt.Errorf("server: views fs: %w", err)
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(sub),
		gotemplate.WithSetName("cv-views"),
	)
	if err != nil {
		return nil, fmt.Errorf("server: views engine: %w", err)
	}
	return &Pages{engine: engine}, nil
}

// Gallery renders one card per entry. The card whose id equals active is
// highlighted; pass 0 for none.
func (p *Pages) Gallery(entries []catalog.Entry, active int, links GalleryLinks) ([]byte, error) {
	detail := links.Detail
	if detail == nil {
		detail = detailPath
	}
	cards := make([]any, 0, len(entries))
	for _, entry := range entries {
		d := variant.Resolve(entry.ID)
		cards = append(cards, map[string]any{
			"id":      entry.ID,
			"name":    entry.Name,
			"href":    detail(entry.ID),
			"active":  entry.ID == active,
			"primary": d.Palette.Primary,
		})
	}
	return p.render("gallery", map[string]any{
		"heading":        GalleryHeading,
		"cards":          cards,
		"stylesheet_url": links.Stylesheet,
	})
}

// DetailPage is the data for the detail view. Empty BackHref and OtherHref
// fall back to the server's gallery URLs.
type DetailPage struct {
	ID            int
	Label         string
	Document      []byte
	FontURL       string
	StylesheetURL string
	ScriptURL     string
	BackHref      string
	OtherHref     string
}

// Detail renders one template inside the print toolbar shell.
func (p *Pages) Detail(page DetailPage) ([]byte, error) {
	back := page.BackHref
	if back == "" {
		back = "/"
	}
	other := page.OtherHref
	if other == "" {
		other = HighlightHref("/", page.ID)
	}
	return p.render("detail", map[string]any{
		"id":             page.ID,
		"label":          page.Label,
		"document":       string(page.Document),
		"back_href":      back,
		"other_href":     other,
		"font_url":       page.FontURL,
		"stylesheet_url": page.StylesheetURL,
		"script_url":     page.ScriptURL,
	})
}

// HighlightHref links to a gallery page with the card for id highlighted.
func HighlightHref(gallery string, id int) string {
	return gallery + "?" + highlightParam + "=" + strconv.Itoa(id)
}

func (p *Pages) render(name string, data map[string]any) ([]byte, error) {
	out, err := p.engine.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("server: render view %q: %w", name, err)
	}
	return []byte(out), nil
}

func detailPath(id int) string {
	return "/plantillas/" + strconv.Itoa(id)
}
