package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/admin"); got != "/admin/api/plantillas" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("admin"); got != "/admin/api/plantillas" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/", WithRoutePath("catalogo")); got != "/catalogo" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestComponent_RegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	c := New(WithEntries([]Entry{{ID: 1, Name: "Uno"}}))
	pattern, err := c.RegisterRoutes(mux, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/api/plantillas" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?q=uno", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected missing mux error")
	}
}
