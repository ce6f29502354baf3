package html

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-cvtemplates/pkg/layout"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
)

var sectionLabels = map[layout.Section]string{
	layout.SectionSummary:    "Resumen",
	layout.SectionExperience: "Experiencia",
	layout.SectionEducation:  "Educación",
	layout.SectionSkills:     "Habilidades",
	layout.SectionLanguages:  "Idiomas",
}

// SectionLabel returns the static heading shown above a section. Header
// sections have no label.
func SectionLabel(s layout.Section) string {
	return sectionLabels[s]
}

type contactLink struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

// contactLinks lists the optional links in display order, skipping absent ones.
func contactLinks(c resume.Contact) []contactLink {
	links := make([]contactLink, 0, 3)
	if c.HasWebsite() {
		links = append(links, contactLink{Kind: "website", Label: "Sitio", Href: strings.TrimSpace(c.Website)})
	}
	if c.HasLinkedIn() {
		links = append(links, contactLink{Kind: "linkedin", Label: "LinkedIn", Href: strings.TrimSpace(c.LinkedIn)})
	}
	if c.HasGitHub() {
		links = append(links, contactLink{Kind: "github", Label: "GitHub", Href: strings.TrimSpace(c.GitHub)})
	}
	return links
}

func templateName(s layout.Section) string {
	return "section_" + strings.ReplaceAll(string(s), "-", "_")
}

func regionClasses(r layout.Region, chrome map[string]string) string {
	classes := []string{chrome[HookRegion], "cv-" + string(r.Kind)}
	switch r.Kind {
	case layout.KindGrid:
		if r.Columns > 0 {
			classes = append(classes, "cv-grid--"+strconv.Itoa(r.Columns))
		}
	case layout.KindColumn:
		if r.Span > 0 {
			classes = append(classes, "cv-col--span-"+strconv.Itoa(r.Span))
		}
	}
	for _, d := range r.Decor {
		classes = append(classes, "cv-decor--"+string(d))
	}
	return strings.Join(classes, " ")
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(vars[key])
		if value == "" || !strings.HasPrefix(key, "--") {
			continue
		}
		parts = append(parts, key+": "+value)
	}
	return strings.Join(parts, "; ")
}

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if validClassToken(token) {
			keep = append(keep, token)
		}
	}
	return strings.Join(keep, " ")
}

func validClassToken(token string) bool {
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == ':', r == '/':
		default:
			return false
		}
	}
	return token != ""
}
