package layout

import (
	"fmt"
	"strings"
)

// Composition is the resolved region tree for one arrangement.
type Composition struct {
	Arrangement Arrangement `json:"arrangement"`
	Name        string      `json:"name"`
	Root        Region      `json:"root"`
}

// compositions is indexed by Arrangement-1.
var compositions = [Count]func() Region{
	composeStacked,
	composeSidebarLeft,
	composeBoxed,
	composeInvertedHeader,
	composeSplit,
	composeAccentRail,
	composeFramed,
	composeSidebarMain,
}

// Compose returns the composition for a. Undefined values use SidebarMain.
func Compose(a Arrangement) Composition {
	if !a.Valid() {
		a = SidebarMain
	}
	return Composition{
		Arrangement: a,
		Name:        a.String(),
		Root:        compositions[a-1](),
	}
}

func composeStacked() Region {
	return Stack(slots(
		SectionHeader,
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionLanguages,
	)...)
}

func composeSidebarLeft() Region {
	return Grid(3,
		Nest(Column(1,
			Slot(SectionHeader),
			Nest(Stack(slots(SectionSkills, SectionLanguages, SectionEducation)...)),
		).With(DecorDivider)),
		Nest(Column(2, slots(SectionSummary, SectionExperience)...)),
	)
}

func composeBoxed() Region {
	return Stack(
		Slot(SectionHeader),
		Nest(Grid(3,
			Nest(Column(2, slots(SectionSummary, SectionExperience)...)),
			Nest(Column(1, slots(SectionSkills, SectionEducation, SectionLanguages)...)),
		)),
	).With(DecorTinted, DecorBordered)
}

// composeInvertedHeader swaps the regular header for the inverted block,
// which never shows the optional contact links.
func composeInvertedHeader() Region {
	return Stack(
		Slot(SectionHeaderInverted),
		Nest(Grid(2,
			Nest(Column(1, slots(SectionSummary, SectionExperience)...)),
			Nest(Column(1, slots(SectionSkills, SectionEducation, SectionLanguages)...)),
		)),
	)
}

func composeSplit() Region {
	return Stack(
		Slot(SectionHeader),
		Nest(Grid(2,
			Nest(Column(1, slots(SectionExperience, SectionEducation)...)),
			Nest(Column(1, slots(SectionSummary, SectionSkills, SectionLanguages)...)),
		)),
	)
}

func composeAccentRail() Region {
	return Stack(
		Slot(SectionHeader),
		Nest(Grid(3,
			Nest(Column(2, slots(SectionExperience, SectionEducation)...)),
			Nest(Column(1, slots(SectionSummary, SectionSkills, SectionLanguages)...)),
		)),
	).With(DecorAccentRail)
}

func composeFramed() Region {
	return Stack(
		Slot(SectionHeader),
		Slot(SectionSummary),
		Nest(Grid(2, slots(SectionSkills, SectionEducation)...)),
		Slot(SectionExperience),
		Slot(SectionLanguages),
	).With(DecorBordered)
}

func composeSidebarMain() Region {
	return Stack(
		Slot(SectionHeader),
		Nest(Grid(3,
			Nest(Column(1, slots(SectionSkills, SectionLanguages)...)),
			Nest(Column(2, slots(SectionSummary, SectionExperience, SectionEducation)...)),
		)),
	)
}

// Sections flattens the composition into document order.
func (c Composition) Sections() []Section {
	var out []Section
	walk(c.Root, func(s Section) {
		out = append(out, s)
	})
	return out
}

// Validate checks that exactly one header slot and exactly one slot for each
// content section are present.
func (c Composition) Validate() error {
	counts := make(map[Section]int)
	headers := 0
	for _, s := range c.Sections() {
		if s.IsHeader() {
			headers++
			continue
		}
		counts[s]++
	}

	var problems []string
	if headers != 1 {
		problems = append(problems, fmt.Sprintf("header slots=%d", headers))
	}
	for _, s := range []Section{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionLanguages} {
		if counts[s] != 1 {
			problems = append(problems, fmt.Sprintf("%s slots=%d", s, counts[s]))
		}
		delete(counts, s)
	}
	for s, n := range counts {
		problems = append(problems, fmt.Sprintf("unknown section %q slots=%d", s, n))
	}
	if len(problems) > 0 {
		return fmt.Errorf("layout: %s: %s", c.Name, strings.Join(problems, ", "))
	}
	return nil
}

// Walk visits every region depth first, parents before children.
func Walk(r Region, visit func(Region)) {
	visit(r)
	for _, child := range r.Children {
		if child.Region != nil {
			Walk(*child.Region, visit)
		}
	}
}

func walk(r Region, visit func(Section)) {
	for _, child := range r.Children {
		if child.Region != nil {
			walk(*child.Region, visit)
			continue
		}
		if child.Section != "" {
			visit(child.Section)
		}
	}
}
