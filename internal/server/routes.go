package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-cvtemplates/components/catalog"
	"github.com/goliatone/go-cvtemplates/internal/logging"
	"github.com/goliatone/go-cvtemplates/pkg/gallery"
	"github.com/goliatone/go-cvtemplates/pkg/renderers/html"
	"github.com/goliatone/go-cvtemplates/pkg/renderers/jsonview"
)

// highlightParam marks a card on the gallery page.
const highlightParam = "plantilla"

func (s *Server) routes(mux *http.ServeMux, catalogOpts []catalog.OptionFn) error {
	mux.HandleFunc("GET /{$}", s.handleGallery)
	mux.HandleFunc("GET /plantillas/{id}", s.handleDetail)
	mux.HandleFunc("GET /plantillas/{id}/documento", s.handleDocument)
	mux.HandleFunc("GET /api/plantillas/{id}", s.handleDescriptor)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET "+AssetsPath, http.StripPrefix(strings.TrimSuffix(AssetsPath, "/"), http.FileServerFS(html.AssetsFS())))

	opts := append([]catalog.OptionFn{catalog.WithEntries(s.gallery.Entries())}, catalogOpts...)
	if _, err := catalog.RegisterRoutes(mux, "", opts...); err != nil {
		return fmt.Errorf("server: mount catalog: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	active, _ := strconv.Atoi(r.URL.Query().Get(highlightParam))
	body, err := s.pages.Gallery(s.gallery.Entries(), active, GalleryLinks{
		Stylesheet: AssetsPath + html.StylesheetName,
	})
	s.writePage(w, r, "gallery", body, err)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := s.templateID(w, r)
	if !ok {
		return
	}
	res, err := s.gallery.Render(r.Context(), gallery.Request{ID: id, Renderer: html.Name})
	if err != nil {
		s.renderFailed(w, r, id, err)
		return
	}

	body, err := s.pages.Detail(DetailPage{
		ID:            id,
		Label:         res.Label,
		Document:      res.Body,
		FontURL:       res.Variant.Font.StylesheetURL(),
		StylesheetURL: AssetsPath + html.StylesheetName,
		ScriptURL:     AssetsPath + html.ScriptName,
	})
	s.writePage(w, r, "detail", body, err)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	s.renderAs(w, r, html.Name, true)
}

func (s *Server) handleDescriptor(w http.ResponseWriter, r *http.Request) {
	s.renderAs(w, r, jsonview.Name, false)
}

func (s *Server) renderAs(w http.ResponseWriter, r *http.Request, renderer string, standalone bool) {
	id, ok := s.templateID(w, r)
	if !ok {
		return
	}
	res, err := s.gallery.Render(r.Context(), gallery.Request{
		ID:         id,
		Renderer:   renderer,
		Standalone: standalone,
	})
	if err != nil {
		s.renderFailed(w, r, id, err)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	_, _ = w.Write(res.Body)
}

// templateID parses the {id} path value. Any integer is accepted; ids outside
// the catalog still render with a generic label.
func (s *Server) templateID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid template id %q", raw), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (s *Server) renderFailed(w http.ResponseWriter, r *http.Request, id int, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusServiceUnavailable
	}
	s.logger.Error("render template",
		slog.Int("id", id),
		slog.String("error", err.Error()),
		slog.String("request_id", logging.RequestID(r.Context())),
	)
	http.Error(w, http.StatusText(status), status)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, name string, body []byte, err error) {
	if err != nil {
		s.logger.Error("render view",
			slog.String("view", name),
			slog.String("error", err.Error()),
			slog.String("request_id", logging.RequestID(r.Context())),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}
