package html_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cvtemplates/pkg/layout"
	"github.com/goliatone/go-cvtemplates/pkg/render"
	"github.com/goliatone/go-cvtemplates/pkg/renderers/html"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
	"github.com/goliatone/go-cvtemplates/pkg/testsupport"
	"github.com/goliatone/go-cvtemplates/pkg/variant"
)

func newRenderer(t *testing.T, opts ...html.Option) *html.Renderer {
	t.Helper()
	renderer, err := html.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func renderID(t *testing.T, renderer *html.Renderer, record resume.ResumeRecord, id int, opts render.RenderOptions) []byte {
	t.Helper()
	d := variant.Resolve(id)
	out, err := renderer.Render(context.Background(), render.Request{
		Resume:      record,
		Variant:     d,
		Composition: d.Composition(),
		Options:     opts,
	})
	if err != nil {
		t.Fatalf("render id %d: %v", id, err)
	}
	return out
}

func sectionOrder(doc *goquery.Document) []string {
	var out []string
	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("data-section")
		out = append(out, name)
	})
	return out
}

func TestRenderer_SectionsFollowComposition(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()

	for id := 1; id <= layout.Count; id++ {
		doc := testsupport.MustParseHTML(t, renderID(t, renderer, record, id, render.RenderOptions{}))

		var want []string
		for _, s := range variant.Resolve(id).Composition().Sections() {
			want = append(want, string(s))
		}
		if diff := cmp.Diff(want, sectionOrder(doc)); diff != "" {
			t.Fatalf("id %d section order mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestRenderer_LanguagesOmittedWhenAbsent(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()
	record.Languages = nil

	for id := 1; id <= layout.Count; id++ {
		doc := testsupport.MustParseHTML(t, renderID(t, renderer, record, id, render.RenderOptions{}))
		if n := doc.Find(`[data-section="languages"]`).Length(); n != 0 {
			t.Fatalf("id %d: expected no languages section, got %d", id, n)
		}
		for _, name := range []string{"summary", "experience", "education", "skills"} {
			if n := doc.Find(`[data-section="` + name + `"]`).Length(); n != 1 {
				t.Fatalf("id %d: expected one %s section, got %d", id, name, n)
			}
		}
		if n := doc.Find(`[data-section^="header"]`).Length(); n != 1 {
			t.Fatalf("id %d: expected one header, got %d", id, n)
		}
	}
}

func TestRenderer_LanguagesPresent(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()
	doc := testsupport.MustParseHTML(t, renderID(t, renderer, record, 1, render.RenderOptions{}))

	got := testsupport.Texts(doc, `[data-entry="language"]`)
	if diff := cmp.Diff(record.Languages, got); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
	if label := strings.TrimSpace(doc.Find(`[data-section="languages"] h2`).Text()); label != "Idiomas" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestRenderer_ExperienceEntriesInInputOrder(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()
	doc := testsupport.MustParseHTML(t, renderID(t, renderer, record, 5, render.RenderOptions{}))

	entries := doc.Find(`[data-entry="experience"]`)
	if entries.Length() != len(record.Experience) {
		t.Fatalf("expected %d experience entries, got %d", len(record.Experience), entries.Length())
	}

	entries.Each(func(i int, s *goquery.Selection) {
		exp := record.Experience[i]
		title := strings.Join(strings.Fields(s.Find(".cv-entry-title").Text()), " ")
		if want := exp.Role + " · " + exp.Company; title != want {
			t.Fatalf("entry %d title: want %q, got %q", i, want, title)
		}
		dates := strings.TrimSpace(s.Find(".cv-entry-dates").Text())
		if want := exp.Start + " – " + exp.End; dates != want {
			t.Fatalf("entry %d dates: want %q, got %q", i, want, dates)
		}
		var bullets []string
		s.Find(`[data-entry="bullet"]`).Each(func(_ int, li *goquery.Selection) {
			bullets = append(bullets, strings.TrimSpace(li.Text()))
		})
		if diff := cmp.Diff(exp.Bullets, bullets); diff != "" {
			t.Fatalf("entry %d bullets mismatch (-want +got):\n%s", i, diff)
		}
	})
}

func TestRenderer_EducationAndSkills(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()
	doc := testsupport.MustParseHTML(t, renderID(t, renderer, record, 3, render.RenderOptions{}))

	if n := doc.Find(`[data-entry="education"]`).Length(); n != len(record.Education) {
		t.Fatalf("expected %d education entries, got %d", len(record.Education), n)
	}
	first := strings.Join(strings.Fields(doc.Find(`[data-entry="education"] .cv-entry-title`).First().Text()), " ")
	if want := record.Education[0].Degree + " · " + record.Education[0].School; first != want {
		t.Fatalf("education title: want %q, got %q", want, first)
	}
	if diff := cmp.Diff(record.Skills, testsupport.Texts(doc, `[data-entry="skill"]`)); diff != "" {
		t.Fatalf("skills mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_HeaderLinks(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()
	doc := testsupport.MustParseHTML(t, renderID(t, renderer, record, 1, render.RenderOptions{}))

	header := doc.Find(`[data-section="header"]`)
	if !header.HasClass("cv-header--bordered") {
		t.Fatalf("expected bordered header for id 1, classes=%q", header.AttrOr("class", ""))
	}
	got := testsupport.Texts(doc, `[data-section="header"] a`)
	if diff := cmp.Diff([]string{"Sitio", "LinkedIn", "GitHub"}, got); diff != "" {
		t.Fatalf("header links mismatch (-want +got):\n%s", diff)
	}
	if href := doc.Find(`a[data-contact-item="github"]`).AttrOr("href", ""); href != record.Contact.GitHub {
		t.Fatalf("unexpected github href %q", href)
	}

	record.Contact.Website = ""
	record.Contact.GitHub = ""
	doc = testsupport.MustParseHTML(t, renderID(t, renderer, record, 1, render.RenderOptions{}))
	got = testsupport.Texts(doc, `[data-section="header"] a`)
	if diff := cmp.Diff([]string{"LinkedIn"}, got); diff != "" {
		t.Fatalf("header links mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_InvertedHeaderHidesLinks(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()
	doc := testsupport.MustParseHTML(t, renderID(t, renderer, record, 4, render.RenderOptions{}))

	if n := doc.Find(`[data-section="header-inverted"]`).Length(); n != 1 {
		t.Fatalf("expected inverted header, got %d", n)
	}
	if n := doc.Find(`[data-section="header"]`).Length(); n != 0 {
		t.Fatalf("expected no regular header, got %d", n)
	}
	if n := doc.Find("[data-section] a").Length(); n != 0 {
		t.Fatalf("inverted header must not render links, got %d", n)
	}
	got := testsupport.Texts(doc, `[data-section="header-inverted"] [data-contact-item]`)
	want := []string{record.Contact.Email, record.Contact.Phone, record.Contact.Location}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("contact items mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_EmptyListsRenderZeroRows(t *testing.T) {
	renderer := newRenderer(t)
	doc := testsupport.MustParseHTML(t, renderID(t, renderer, testsupport.MinimalResume(), 1, render.RenderOptions{}))

	for _, name := range []string{"experience", "education", "skills"} {
		if n := doc.Find(`[data-section="` + name + `"]`).Length(); n != 1 {
			t.Fatalf("expected %s section to render, got %d", name, n)
		}
	}
	if n := doc.Find("[data-entry]").Length(); n != 0 {
		t.Fatalf("expected no entries, got %d", n)
	}
	if n := doc.Find(`[data-section="languages"]`).Length(); n != 0 {
		t.Fatalf("expected no languages section, got %d", n)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()

	first := renderID(t, renderer, record, 17, render.RenderOptions{Standalone: true})
	second := renderID(t, newRenderer(t), record, 17, render.RenderOptions{Standalone: true})
	if !bytes.Equal(first, second) {
		t.Fatalf("expected byte-identical output")
	}
}

func TestRenderer_DoesNotMutateRecord(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.MinimalResume()
	before := record.Clone()

	renderID(t, renderer, record, 2, render.RenderOptions{})
	if diff := cmp.Diff(before, record); diff != "" {
		t.Fatalf("record mutated (-want +got):\n%s", diff)
	}
}

func TestRenderer_EscapesText(t *testing.T) {
	renderer := newRenderer(t)
	record := testsupport.SampleResume()
	record.Name = `<b>Ana</b> & "Co"`

	out := renderID(t, renderer, record, 1, render.RenderOptions{})
	doc := testsupport.MustParseHTML(t, out)
	if n := doc.Find(".cv-name b").Length(); n != 0 {
		t.Fatalf("markup in text fields must be escaped")
	}
	if got := doc.Find(".cv-name").Text(); got != record.Name {
		t.Fatalf("expected literal name, got %q", got)
	}
}

func TestRenderer_ThemeVariables(t *testing.T) {
	renderer := newRenderer(t)
	out := renderID(t, renderer, testsupport.SampleResume(), 2, render.RenderOptions{})
	doc := testsupport.MustParseHTML(t, out)

	article := doc.Find("article[data-template]")
	if article.AttrOr("data-template", "") != "2" || article.AttrOr("data-layout", "") != "2" {
		t.Fatalf("unexpected article attributes: %v", article.Nodes[0].Attr)
	}
	style := article.AttrOr("style", "")
	if !strings.Contains(style, "--cv-primary: #e11d48") {
		t.Fatalf("expected rose palette in style, got %q", style)
	}
	if !article.HasClass("cv-font-roboto") || !article.HasClass("cv-layout-sidebar-left") {
		t.Fatalf("unexpected article classes %q", article.AttrOr("class", ""))
	}
	if n := doc.Find(".cv-decor--divider").Length(); n != 1 {
		t.Fatalf("expected divider column, got %d", n)
	}
	if n := doc.Find(".cv-grid--3 > .cv-col--span-2").Length(); n != 1 {
		t.Fatalf("expected wide main column, got %d", n)
	}
}

func TestRenderer_Standalone(t *testing.T) {
	renderer := newRenderer(t)
	out := renderID(t, renderer, testsupport.SampleResume(), 6, render.RenderOptions{Standalone: true, Title: "CV"})

	if !bytes.HasPrefix(out, []byte("<!doctype html>")) {
		t.Fatalf("expected doctype, got %q", out[:min(40, len(out))])
	}
	doc := testsupport.MustParseHTML(t, out)
	if got := doc.Find("title").Text(); got != "CV" {
		t.Fatalf("unexpected title %q", got)
	}
	if !strings.Contains(doc.Find("style").Text(), "@page") {
		t.Fatalf("expected print css inlined")
	}
	if href := doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""); !strings.Contains(href, "fonts.googleapis.com") {
		t.Fatalf("expected font stylesheet link, got %q", href)
	}

	fragment := renderID(t, renderer, testsupport.SampleResume(), 6, render.RenderOptions{})
	if bytes.Contains(fragment, []byte("<html")) {
		t.Fatalf("fragment should not contain html element")
	}
}

func TestRenderer_ChromeClassOverrides(t *testing.T) {
	renderer := newRenderer(t)
	out := renderID(t, renderer, testsupport.SampleResume(), 1, render.RenderOptions{
		ChromeClasses: map[string]string{
			html.HookSection: "my-section <script>",
			html.HookLabel:   "",
			"unknown":        "ignored",
		},
	})
	doc := testsupport.MustParseHTML(t, out)

	if n := doc.Find(".my-section").Length(); n != 6 {
		t.Fatalf("expected override on 6 sections, got %d", n)
	}
	if n := doc.Find(".cv-label").Length(); n != 5 {
		t.Fatalf("expected default label class on 5 labels, got %d", n)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("unsafe class token leaked into output")
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := variant.Resolve(1)
	if _, err := renderer.Render(ctx, render.Request{Resume: testsupport.SampleResume(), Variant: d}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRenderer_ComposesWhenCompositionMissing(t *testing.T) {
	renderer := newRenderer(t)
	out, err := renderer.Render(context.Background(), render.Request{
		Resume:  testsupport.SampleResume(),
		Variant: variant.Resolve(4),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := testsupport.MustParseHTML(t, out)
	if n := doc.Find(`[data-section="header-inverted"]`).Length(); n != 1 {
		t.Fatalf("expected composition derived from variant, got %d inverted headers", n)
	}
}
