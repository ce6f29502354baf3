package variant

// Palette is a named accent colour with a light tint and a border shade.
type Palette struct {
	Name    string `json:"name"`
	Primary string `json:"primary"`
	Light   string `json:"light"`
	Border  string `json:"border"`
}

// Slate uses the 700 shade as primary; every other palette uses 600.
var palettes = [...]Palette{
	{Name: "indigo", Primary: "#4f46e5", Light: "#eef2ff", Border: "#c7d2fe"},
	{Name: "rose", Primary: "#e11d48", Light: "#fff1f2", Border: "#fecdd3"},
	{Name: "emerald", Primary: "#059669", Light: "#ecfdf5", Border: "#a7f3d0"},
	{Name: "sky", Primary: "#0284c7", Light: "#f0f9ff", Border: "#bae6fd"},
	{Name: "amber", Primary: "#d97706", Light: "#fffbeb", Border: "#fde68a"},
	{Name: "violet", Primary: "#7c3aed", Light: "#f5f3ff", Border: "#ddd6fe"},
	{Name: "slate", Primary: "#334155", Light: "#f8fafc", Border: "#e2e8f0"},
	{Name: "teal", Primary: "#0d9488", Light: "#f0fdfa", Border: "#99f6e4"},
	{Name: "cyan", Primary: "#0891b2", Light: "#ecfeff", Border: "#a5f3fc"},
	{Name: "fuchsia", Primary: "#c026d3", Light: "#fdf4ff", Border: "#f5d0fe"},
}

// Palettes returns the palette table in resolution order.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes[:])
	return out
}

// PaletteByName looks up a palette by its name.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}
