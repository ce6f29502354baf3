package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cvtemplates/pkg/resume"
)

// goldenEnv enables golden rewrites when set to any non-empty value.
const goldenEnv = "UPDATE_GOLDENS"

// SampleResume returns the built-in sample record.
func SampleResume() resume.ResumeRecord {
	return resume.Sample()
}

// MinimalResume returns a valid record with every optional field empty and
// no list entries, for exercising empty-section rendering.
func MinimalResume() resume.ResumeRecord {
	return resume.ResumeRecord{
		Name:  "Ana Ruiz",
		Title: "Analista",
		Contact: resume.Contact{
			Email:    "ana@example.com",
			Phone:    "+34 600 000 000",
			Location: "Sevilla",
		},
		Summary: "Resumen breve.",
	}
}

// LoadResume reads a JSON or YAML resume fixture.
func LoadResume(t *testing.T, path string) resume.ResumeRecord {
	t.Helper()

	record, err := LoadResumeFromPath(path)
	if err != nil {
		t.Fatalf("load resume: %v", err)
	}
	return record
}

// LoadResumeFromPath returns a parsed record without requiring testing.T.
func LoadResumeFromPath(path string) (resume.ResumeRecord, error) {
	if path == "" {
		return resume.ResumeRecord{}, errors.New("testsupport: resume path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return resume.ResumeRecord{}, fmt.Errorf("testsupport: read resume: %w", err)
	}
	doc, err := resume.NewDocument(resume.SourceFromFile(path), data)
	if err != nil {
		return resume.ResumeRecord{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc.Record()
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv(goldenEnv) == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(goldenEnv) == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// MustParseHTML parses rendered HTML into a goquery document.
func MustParseHTML(t *testing.T, html []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Texts collects the trimmed text of every node matching selector, in
// document order.
func Texts(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.Join(strings.Fields(s.Text()), " "))
	})
	return out
}
