package layout

// Section names one self-contained block of the resume.
type Section string

const (
	SectionHeader         Section = "header"
	SectionHeaderInverted Section = "header-inverted"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
)

// IsHeader reports whether s is one of the header treatments.
func (s Section) IsHeader() bool {
	return s == SectionHeader || s == SectionHeaderInverted
}

// RegionKind describes how a region lays out its children.
type RegionKind string

const (
	KindStack  RegionKind = "stack"
	KindGrid   RegionKind = "grid"
	KindColumn RegionKind = "column"
)

// Decor is a visual treatment applied to a region.
type Decor string

const (
	DecorDivider    Decor = "divider"
	DecorTinted     Decor = "tinted"
	DecorBordered   Decor = "bordered"
	DecorAccentRail Decor = "accent-rail"
)

// Region is a container of section slots and nested regions.
type Region struct {
	Kind     RegionKind `json:"kind"`
	Columns  int        `json:"columns,omitempty"`
	Span     int        `json:"span,omitempty"`
	Decor    []Decor    `json:"decor,omitempty"`
	Children []Node     `json:"children"`
}

// Node is either a section slot or a nested region.
type Node struct {
	Section Section `json:"section,omitempty"`
	Region  *Region `json:"region,omitempty"`
}

// Slot wraps a section as a node.
func Slot(s Section) Node {
	return Node{Section: s}
}

// Nest wraps a region as a node.
func Nest(r Region) Node {
	return Node{Region: &r}
}

// Stack lays children out vertically.
func Stack(children ...Node) Region {
	return Region{Kind: KindStack, Children: children}
}

// Grid lays children out in columns equal-width tracks.
func Grid(columns int, children ...Node) Region {
	return Region{Kind: KindGrid, Columns: columns, Children: children}
}

// Column is a grid cell spanning span tracks.
func Column(span int, children ...Node) Region {
	return Region{Kind: KindColumn, Span: span, Children: children}
}

// With returns a copy of r carrying the given decor.
func (r Region) With(decor ...Decor) Region {
	r.Decor = append(append([]Decor(nil), r.Decor...), decor...)
	return r
}

// HasDecor reports whether r carries d.
func (r Region) HasDecor(d Decor) bool {
	for _, item := range r.Decor {
		if item == d {
			return true
		}
	}
	return false
}

func slots(sections ...Section) []Node {
	out := make([]Node, 0, len(sections))
	for _, s := range sections {
		out = append(out, Slot(s))
	}
	return out
}
