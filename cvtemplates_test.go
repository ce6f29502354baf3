package cvtemplates

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-cvtemplates/pkg/gallery"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
)

func TestGenerateHTML_Standalone(t *testing.T) {
	out, err := GenerateHTML(context.Background(), 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("<!doctype html>")) {
		t.Fatalf("expected standalone document")
	}
	if !bytes.Contains(out, []byte(`data-template="7"`)) {
		t.Fatalf("expected template id in output")
	}
}

func TestAssetsFS_ContainsPrintScript(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "print.js")
	if err != nil {
		t.Fatalf("expected print script to be readable: %v", err)
	}
	if !strings.Contains(string(data), "window.print()") {
		t.Fatalf("expected print handler in script")
	}
}

func TestEmbeddedTemplates_ContainsDocument(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "document.tmpl"); err != nil {
		t.Fatalf("expected document template: %v", err)
	}
}

func TestLoadResume_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.yaml")
	doc := `name: Ana Ruiz
title: Analista
contact:
  email: ana@example.com
  phone: "+34 600 000 000"
  location: Sevilla
summary: Resumen.
experience: []
education: []
skills: [SQL]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	record, err := LoadResume(context.Background(), NewLoader(LoaderOptions{}), resume.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load resume: %v", err)
	}
	if record.Name != "Ana Ruiz" || len(record.Skills) != 1 {
		t.Fatalf("unexpected record %+v", record)
	}

	out, err := GenerateHTML(context.Background(), 1, gallery.WithResume(record))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.Contains(out, []byte("Ana Ruiz")) {
		t.Fatalf("expected external resume in output")
	}
}

func TestResolve_MatchesVariantPackage(t *testing.T) {
	if Resolve(9).Font != Resolve(1).Font {
		t.Fatalf("expected font cycle of 8")
	}
}
