package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-cvtemplates/internal/server"
	"github.com/goliatone/go-cvtemplates/pkg/gallery"
	"github.com/goliatone/go-cvtemplates/pkg/renderers/html"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		outDir      string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the gallery as a static site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outDir == "" {
				return fmt.Errorf("cvtemplates: --out is required")
			}
			g, err := a.gallery(cmd.Context())
			if err != nil {
				return err
			}
			n, err := exportSite(cmd.Context(), g, outDir, concurrency)
			if err != nil {
				return err
			}
			a.logger.Info("static site exported", slog.String("dir", outDir), slog.Int("templates", n))
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory")
	cmd.Flags().IntVar(&concurrency, "concurrency", runtime.GOMAXPROCS(0), "templates rendered in parallel")
	return cmd
}

// exportSite writes index.html, plantillas/{id}.html and assets/* under dir.
// Each template page carries the print toolbar with links relative to the
// site root. It returns the number of templates written.
func exportSite(ctx context.Context, g *gallery.Gallery, dir string, concurrency int) (int, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	pagesDir := filepath.Join(dir, "plantillas")
	if err := os.MkdirAll(pagesDir, 0o755); err != nil {
		return 0, fmt.Errorf("cvtemplates: create %s: %w", pagesDir, err)
	}
	if err := copyAssets(filepath.Join(dir, "assets")); err != nil {
		return 0, err
	}

	entries := g.Entries()
	pages, err := server.NewPages()
	if err != nil {
		return 0, err
	}
	index, err := pages.Gallery(entries, 0, server.GalleryLinks{
		Stylesheet: "assets/" + html.StylesheetName,
		Detail:     func(id int) string { return "plantillas/" + strconv.Itoa(id) + ".html" },
	})
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), index, 0o644); err != nil {
		return 0, fmt.Errorf("cvtemplates: write index: %w", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for _, entry := range entries {
		id := entry.ID
		eg.Go(func() error {
			res, err := g.Render(egCtx, gallery.Request{ID: id, Renderer: html.Name})
			if err != nil {
				return err
			}
			body, err := pages.Detail(server.DetailPage{
				ID:            id,
				Label:         res.Label,
				Document:      res.Body,
				FontURL:       res.Variant.Font.StylesheetURL(),
				StylesheetURL: "../assets/" + html.StylesheetName,
				ScriptURL:     "../assets/" + html.ScriptName,
				BackHref:      "../index.html",
				OtherHref:     server.HighlightHref("../index.html", id),
			})
			if err != nil {
				return err
			}
			path := filepath.Join(pagesDir, strconv.Itoa(id)+".html")
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("cvtemplates: write %s: %w", path, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func copyAssets(dst string) error {
	assets := html.AssetsFS()
	return fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("cvtemplates: write asset %s: %w", name, err)
		}
		return nil
	})
}
