package variant

import (
	"fmt"

	"github.com/goliatone/go-cvtemplates/pkg/layout"
)

// HeaderStyle selects the visual treatment of the regular header block.
type HeaderStyle int

const (
	HeaderPlain HeaderStyle = iota
	HeaderBordered
	HeaderBoxed
	HeaderAccentBar
)

var headerNames = [...]string{"plain", "bordered", "boxed", "accent-bar"}

func (h HeaderStyle) String() string {
	if h < HeaderPlain || h > HeaderAccentBar {
		return fmt.Sprintf("header(%d)", int(h))
	}
	return headerNames[h]
}

// MarshalText renders the style name in JSON and YAML output.
func (h HeaderStyle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Cycle is the number of ids after which descriptors repeat.
const Cycle = 40

// Descriptor is the resolved visual configuration for a template id.
type Descriptor struct {
	ID      int                `json:"id"`
	Font    FontKey            `json:"font"`
	Palette Palette            `json:"palette"`
	Header  HeaderStyle        `json:"header"`
	Layout  layout.Arrangement `json:"layout"`
}

// Resolve maps an id onto its descriptor. Every int is accepted; the
// remainders are taken in [0, n) so ids <= 0 also resolve deterministically.
func Resolve(id int) Descriptor {
	return Descriptor{
		ID:      id,
		Font:    fonts[mod(id-1, len(fonts))],
		Palette: palettes[mod(id-1, len(palettes))],
		Header:  HeaderStyle(mod(id, len(headerNames))),
		Layout:  layout.FromRemainder(mod(id, layout.Count)),
	}
}

// Composition returns the layout composition for the descriptor.
func (d Descriptor) Composition() layout.Composition {
	return layout.Compose(d.Layout)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
