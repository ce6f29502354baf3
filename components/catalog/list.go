package catalog

import (
	"embed"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/templates.yaml
var dataFS embed.FS

const defaultListPath = "data/templates.yaml"

// Entry is one catalog template: its id and display name.
type Entry struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type catalogFile struct {
	Templates []Entry `yaml:"templates"`
}

var (
	defaultOnce    sync.Once
	defaultEntries []Entry
	defaultErr     error
)

// DefaultEntries returns a copy of the embedded catalog sorted by id.
func DefaultEntries() ([]Entry, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		entries, err := LoadEntries(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultEntries = entries
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Entry{}, defaultEntries...), nil
}

// MustDefaultEntries panics when the embedded catalog cannot be decoded.
func MustDefaultEntries() []Entry {
	entries, err := DefaultEntries()
	if err != nil {
		panic(err)
	}
	return entries
}

// LoadEntries decodes a catalog YAML document. Ids must be positive and
// unique; names are trimmed and must not be empty.
func LoadEntries(r io.Reader) ([]Entry, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: missing reader")
	}

	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	entries := make([]Entry, 0, len(file.Templates))
	seen := map[int]struct{}{}
	for _, entry := range file.Templates {
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.ID <= 0 {
			return nil, fmt.Errorf("catalog: invalid id %d", entry.ID)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog: template %d has no name", entry.ID)
		}
		if _, ok := seen[entry.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate id %d", entry.ID)
		}
		seen[entry.ID] = struct{}{}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// GenericLabel is the label of an id without a catalog entry.
func GenericLabel(id int) string {
	return "Plantilla " + strconv.Itoa(id)
}

// Label returns the catalog name for id, or the generic label. It never fails.
func Label(entries []Entry, id int) string {
	if entry, ok := Lookup(entries, id); ok {
		return entry.Name
	}
	return GenericLabel(id)
}

// Lookup finds the entry for id.
func Lookup(entries []Entry, id int) (Entry, bool) {
	for _, entry := range entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}
