package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Search matches query case-insensitively against entry names and ids. Prefix
// matches come first; ties keep id order. An empty query returns the first
// entries when EmptySearchMode is EmptySearchAll.
func Search(entries []Entry, query string, limit int, opts Options) []Entry {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode != EmptySearchAll {
			return nil
		}
		if len(entries) <= limit {
			return append([]Entry{}, entries...)
		}
		return append([]Entry{}, entries[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedEntry, 0, 16)
	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		id := strconv.Itoa(entry.ID)
		if !strings.Contains(name, q) && id != q {
			continue
		}
		matches = append(matches, matchedEntry{
			entry:    entry,
			isPrefix: id == q || strings.HasPrefix(name, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].entry.ID < matches[j].entry.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Entry, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.entry)
	}
	return out
}

type matchedEntry struct {
	entry    Entry
	isPrefix bool
}
