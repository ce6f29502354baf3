package resume

import (
	"errors"
	"testing"
)

const validJSON = `{
  "name": "Ana Ruiz",
  "title": "Diseñadora UX",
  "contact": {"email": "ana@example.com", "phone": "+34 611 000 000", "location": "Sevilla", "website": "https://ana.example.com"},
  "summary": "Diseño centrado en las personas.",
  "experience": [
    {"company": "Studio", "role": "Lead", "start": "2020", "end": "2024", "bullets": ["uno", "dos"]}
  ],
  "education": [
    {"school": "US", "degree": "Bellas Artes", "start": "2012", "end": "2016"}
  ],
  "skills": ["Figma", "Research"]
}`

const validYAML = `
name: Ana Ruiz
title: Diseñadora UX
contact:
  email: ana@example.com
  phone: "+34 611 000 000"
  location: Sevilla
summary: Diseño centrado en las personas.
experience:
  - company: Studio
    role: Lead
    start: "2020"
    end: "2024"
    bullets: [uno, dos]
education: []
skills: [Figma]
languages: [Español, Inglés]
`

func TestParse_JSON(t *testing.T) {
	record, err := Parse([]byte(validJSON), FormatAuto)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if record.Name != "Ana Ruiz" {
		t.Fatalf("unexpected name %q", record.Name)
	}
	if record.HasLanguages() {
		t.Fatalf("languages should be absent")
	}
	if got := record.Experience[0].Bullets; len(got) != 2 || got[0] != "uno" || got[1] != "dos" {
		t.Fatalf("bullets order not preserved: %v", got)
	}
}

func TestParse_YAML(t *testing.T) {
	record, err := Parse([]byte(validYAML), FormatYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(record.Languages) != 2 || record.Languages[1] != "Inglés" {
		t.Fatalf("unexpected languages %v", record.Languages)
	}
	if len(record.Education) != 0 {
		t.Fatalf("expected no education rows, got %d", len(record.Education))
	}
}

func TestParse_SchemaViolation(t *testing.T) {
	_, err := Parse([]byte(`{"title": "x"}`), FormatJSON)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(schemaErr.Errors) == 0 {
		t.Fatalf("expected field errors")
	}
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("schema errors should match ErrInvalidRecord")
	}
}

func TestParse_StripsMarkupAndUnsafeLinks(t *testing.T) {
	doc := `{
  "name": "<b>Ana</b> & Co",
  "title": "<script>alert(1)</script>Diseñadora",
  "contact": {"email": "ana@example.com", "phone": "1", "location": "Sevilla",
              "website": "javascript:alert(1)", "github": "https://github.com/ana"},
  "summary": "<p>Hola</p>",
  "experience": [], "education": [], "skills": ["<i>Go</i>"]
}`
	record, err := Parse([]byte(doc), FormatJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if record.Name != "Ana & Co" {
		t.Fatalf("unexpected name %q", record.Name)
	}
	if record.Title != "Diseñadora" {
		t.Fatalf("unexpected title %q", record.Title)
	}
	if record.Summary != "Hola" {
		t.Fatalf("unexpected summary %q", record.Summary)
	}
	if record.Skills[0] != "Go" {
		t.Fatalf("unexpected skill %q", record.Skills[0])
	}
	if record.Contact.HasWebsite() {
		t.Fatalf("javascript: website should be dropped, got %q", record.Contact.Website)
	}
	if record.Contact.GitHub != "https://github.com/ana" {
		t.Fatalf("github link should survive, got %q", record.Contact.GitHub)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("   "), FormatAuto); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestDocument_FormatFromLocation(t *testing.T) {
	cases := map[string]Format{
		"cv.json":                      FormatJSON,
		"cv.YML":                       FormatYAML,
		"https://x.test/cv.yaml?raw=1": FormatYAML,
		"cv.txt":                       FormatAuto,
	}
	for location, want := range cases {
		doc, err := NewDocument(SourceFromFS(location), []byte("x"))
		if err != nil {
			t.Fatalf("new document: %v", err)
		}
		if got := doc.Format(); got != want {
			t.Fatalf("%s: want %q, got %q", location, want, got)
		}
	}
}

func TestSourceFromURL_RejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "not a url", "ftp://host/cv.json"} {
		if _, err := SourceFromURL(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
	src, err := SourceFromURL("https://example.com/cv.json")
	if err != nil {
		t.Fatalf("valid url: %v", err)
	}
	if src.Kind() != SourceKindURL {
		t.Fatalf("unexpected kind %q", src.Kind())
	}
}
