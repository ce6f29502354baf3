package gotemplate

import (
	"strings"
	"sync"
	"unicode"

	"github.com/flosch/pongo2/v6"
)

// DateSeparator joins start and end in the daterange filter.
const DateSeparator = " – "

var defaultFilters sync.Once

func registerDefaultFilters() {
	defaultFilters.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"trim":      filterTrim,
			"daterange": filterDateRange,
			"initials":  filterInitials,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterDateRange renders {{ start|daterange:end }} as "start – end". A
// missing side collapses to the other one.
func filterDateRange(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(DateRange(valueString(in), valueString(param))), nil
}

func filterInitials(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(Initials(valueString(in))), nil
}

// DateRange joins two period bounds with DateSeparator.
func DateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "":
		return end
	case end == "":
		return start
	default:
		return start + DateSeparator + end
	}
}

// Initials returns the upper-cased first letters of the first and last words.
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	if len(words) == 0 {
		return ""
	}
	picks := []string{words[0]}
	if len(words) > 1 {
		picks = append(picks, words[len(words)-1])
	}
	var b strings.Builder
	for _, word := range picks {
		for _, r := range word {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}
	return b.String()
}

func valueString(v *pongo2.Value) string {
	if v == nil || v.IsNil() {
		return ""
	}
	return v.String()
}
