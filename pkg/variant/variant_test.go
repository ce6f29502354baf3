package variant

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cvtemplates/pkg/layout"
)

func TestResolve_KnownIDs(t *testing.T) {
	tests := []struct {
		id      int
		font    FontKey
		palette string
		header  HeaderStyle
		layout  layout.Arrangement
	}{
		{id: 1, font: FontInter, palette: "indigo", header: HeaderBordered, layout: layout.Stacked},
		{id: 2, font: FontRoboto, palette: "rose", header: HeaderBoxed, layout: layout.SidebarLeft},
		{id: 4, font: FontMontserrat, palette: "sky", header: HeaderPlain, layout: layout.InvertedHeader},
		{id: 7, font: FontSourceSans, palette: "slate", header: HeaderAccentBar, layout: layout.Framed},
		{id: 8, font: FontLora, palette: "teal", header: HeaderPlain, layout: layout.SidebarMain},
		{id: 10, font: FontRoboto, palette: "fuchsia", header: HeaderBoxed, layout: layout.SidebarLeft},
		{id: 40, font: FontLora, palette: "fuchsia", header: HeaderPlain, layout: layout.SidebarMain},
	}

	for _, tt := range tests {
		got := Resolve(tt.id)
		if got.ID != tt.id {
			t.Fatalf("id %d: descriptor id %d", tt.id, got.ID)
		}
		if got.Font != tt.font {
			t.Fatalf("id %d: font want %s, got %s", tt.id, tt.font, got.Font)
		}
		if got.Palette.Name != tt.palette {
			t.Fatalf("id %d: palette want %s, got %s", tt.id, tt.palette, got.Palette.Name)
		}
		if got.Header != tt.header {
			t.Fatalf("id %d: header want %s, got %s", tt.id, tt.header, got.Header)
		}
		if got.Layout != tt.layout {
			t.Fatalf("id %d: layout want %s, got %s", tt.id, tt.layout, got.Layout)
		}
	}
}

func TestResolve_FieldsDrawnFromTables(t *testing.T) {
	for id := -100; id <= 200; id++ {
		d := Resolve(id)
		if d.Font.Family() == "" {
			t.Fatalf("id %d: font %q not in table", id, d.Font)
		}
		if _, ok := PaletteByName(d.Palette.Name); !ok {
			t.Fatalf("id %d: palette %q not in table", id, d.Palette.Name)
		}
		if d.Header < HeaderPlain || d.Header > HeaderAccentBar {
			t.Fatalf("id %d: header %d out of range", id, d.Header)
		}
		if !d.Layout.Valid() {
			t.Fatalf("id %d: layout %d out of range", id, d.Layout)
		}
	}
}

func TestResolve_Periodicity(t *testing.T) {
	for id := -40; id <= 120; id++ {
		a := Resolve(id)
		b := Resolve(id + Cycle)
		a.ID, b.ID = 0, 0
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("id %d and %d differ (-want +got):\n%s", id, id+Cycle, diff)
		}
	}
}

func TestResolve_IndependentCycles(t *testing.T) {
	if Resolve(9).Font != Resolve(1).Font {
		t.Fatalf("font should repeat every 8 ids")
	}
	if Resolve(11).Palette != Resolve(1).Palette {
		t.Fatalf("palette should repeat every 10 ids")
	}
	for k := 1; k <= 10; k++ {
		if got := Resolve(8 * k).Layout; got != layout.SidebarMain {
			t.Fatalf("id %d: expected layout 8, got %d", 8*k, got)
		}
	}
}

func TestResolve_InvertedHeaderVariant(t *testing.T) {
	d := Resolve(4)
	if d.Header != HeaderPlain {
		t.Fatalf("expected plain header for id 4, got %s", d.Header)
	}
	if d.Layout != layout.InvertedHeader {
		t.Fatalf("expected layout 4, got %d", d.Layout)
	}
}

func TestResolve_NonPositiveIDs(t *testing.T) {
	d := Resolve(0)
	if d.Font != FontLora || d.Palette.Name != "fuchsia" || d.Header != HeaderPlain || d.Layout != layout.SidebarMain {
		t.Fatalf("unexpected descriptor for id 0: %+v", d)
	}

	neg := Resolve(-3)
	pos := Resolve(37)
	neg.ID, pos.ID = 0, 0
	if diff := cmp.Diff(pos, neg); diff != "" {
		t.Fatalf("id -3 should match id 37 (-want +got):\n%s", diff)
	}
}

func TestHeaderStyle_String(t *testing.T) {
	if got := HeaderAccentBar.String(); got != "accent-bar" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := HeaderStyle(9).String(); got != "header(9)" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestFontKey_StylesheetURL(t *testing.T) {
	got := FontPlayfair.StylesheetURL()
	if !strings.HasPrefix(got, "https://fonts.googleapis.com/css2?") {
		t.Fatalf("unexpected url %q", got)
	}
	if !strings.Contains(got, "Playfair+Display") {
		t.Fatalf("expected family in url, got %q", got)
	}
	if FontKey("comic").StylesheetURL() != "" {
		t.Fatalf("unknown font should have no stylesheet")
	}
}
