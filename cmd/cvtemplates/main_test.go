package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-cvtemplates/components/catalog"
)

type fakePicker struct {
	id   int
	seen int
}

func (p *fakePicker) Pick(_ context.Context, entries []catalog.Entry) (int, error) {
	p.seen = len(entries)
	return p.id, nil
}

func run(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	if a == nil {
		a = newApp()
	}
	var stdout, stderr bytes.Buffer
	root := newRootCmd(a)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := run(t, nil, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 40)
	assert.Equal(t, " 1  Clásico Profesional", lines[0])
	assert.True(t, strings.HasPrefix(lines[39], "40  "))
}

func TestList_Query(t *testing.T) {
	out, _, err := run(t, nil, "list", "--query", "ejecutivo", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, " 3  Ejecutivo Elegante\n", out)
}

func TestRender_JSON(t *testing.T) {
	out, _, err := run(t, nil, "render", "4", "--format", "json")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, float64(4), body["id"])
	assert.Equal(t, "Creativo Audaz", body["label"])
}

func TestRender_HTMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.html")
	_, stderr, err := run(t, nil, "render", "2", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Plantilla 2 (Moderno Minimal)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<!doctype html>")))
}

func TestRender_Fragment(t *testing.T) {
	out, _, err := run(t, nil, "render", "2", "--standalone=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<article"))
}

func TestRender_Pick(t *testing.T) {
	p := &fakePicker{id: 9}
	a := newApp()
	a.picker = p

	out, _, err := run(t, a, "render", "--pick", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, 40, p.seen)
	assert.Contains(t, out, `"id": 9`)
}

func TestRender_Errors(t *testing.T) {
	_, _, err := run(t, nil, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--pick")

	_, _, err = run(t, nil, "render", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid template id")

	_, _, err = run(t, nil, "render", "1", "--format", "pdf")
	require.Error(t, err)
}

func TestRender_ExternalResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: Ana Ruiz
title: Analista
contact:
  email: ana@example.com
  phone: "+34 600 000 000"
  location: Sevilla
summary: Resumen breve.
experience: []
education: []
skills: []
`), 0o644))

	out, _, err := run(t, nil, "render", "1", "--resume", path, "--standalone=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana Ruiz")
	assert.NotContains(t, out, "María Fernanda López")
}

func TestRootRejectsInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, nil, "list", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, nil, "export", "--out", dir, "--concurrency", "4")
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(index))
	require.NoError(t, err)
	assert.Equal(t, 40, doc.Find("[data-card]").Length())
	href, _ := doc.Find("[data-card]").First().Attr("href")
	assert.Equal(t, "plantillas/1.html", href)

	pages, err := filepath.Glob(filepath.Join(dir, "plantillas", "*.html"))
	require.NoError(t, err)
	assert.Len(t, pages, 40)

	for _, asset := range []string{"cvtemplates.css", "print.js"} {
		_, err := os.Stat(filepath.Join(dir, "assets", asset))
		assert.NoError(t, err, asset)
	}

	page, err := os.ReadFile(filepath.Join(dir, "plantillas", "4.html"))
	require.NoError(t, err)
	detail, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "Creativo Audaz", strings.TrimSpace(detail.Find("[data-label]").Text()))
	assert.Equal(t, 1, detail.Find(`[data-action="print"]`).Length())
	assert.Equal(t, 1, detail.Find(`article[data-template="4"]`).Length())
	back, _ := detail.Find("[data-back]").Attr("href")
	assert.Equal(t, "../index.html", back)
	other, _ := detail.Find("[data-other]").Attr("href")
	assert.Equal(t, "../index.html?plantilla=4", other)
	script, _ := detail.Find("script[src]").Attr("src")
	assert.Equal(t, "../assets/print.js", script)
	css, _ := detail.Find(`link[rel="stylesheet"]`).First().Attr("href")
	assert.Equal(t, "../assets/cvtemplates.css", css)
}

func TestExport_RequiresOut(t *testing.T) {
	_, _, err := run(t, nil, "export")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out")
}
