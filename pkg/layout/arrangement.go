package layout

import "fmt"

// Arrangement identifies one of the eight section groupings (1..8).
type Arrangement int

const (
	Stacked Arrangement = iota + 1
	SidebarLeft
	Boxed
	InvertedHeader
	Split
	AccentRail
	Framed
	SidebarMain
)

// Count is the number of defined arrangements.
const Count = 8

var arrangementNames = [Count]string{
	"stacked",
	"sidebar-left",
	"boxed",
	"inverted-header",
	"split",
	"accent-rail",
	"framed",
	"sidebar-right-main",
}

// All returns every arrangement in ascending order.
func All() []Arrangement {
	out := make([]Arrangement, 0, Count)
	for a := Stacked; a <= SidebarMain; a++ {
		out = append(out, a)
	}
	return out
}

// Valid reports whether a names a defined arrangement.
func (a Arrangement) Valid() bool {
	return a >= Stacked && a <= SidebarMain
}

func (a Arrangement) String() string {
	if !a.Valid() {
		return fmt.Sprintf("arrangement(%d)", int(a))
	}
	return arrangementNames[a-1]
}

// FromRemainder maps id mod 8 onto an arrangement; remainder 0 is the eighth.
func FromRemainder(rem int) Arrangement {
	if rem == 0 {
		return SidebarMain
	}
	return Arrangement(rem)
}
