package resume

import (
	"errors"
	"path"
	"strings"
)

// Document wraps a raw resume payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document, copying raw.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("resume: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("resume: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Format guesses the payload encoding from the location extension, falling
// back to FormatAuto.
func (d Document) Format() Format {
	loc := strings.ToLower(d.Location())
	if i := strings.IndexAny(loc, "?#"); i >= 0 {
		loc = loc[:i]
	}
	switch path.Ext(loc) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Record decodes, validates and sanitises the document payload.
func (d Document) Record() (ResumeRecord, error) {
	return Parse(d.raw, d.Format())
}
