package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// Format names a resume document encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Parse decodes a JSON or YAML resume document, checks it against the
// embedded schema, strips any markup from text fields and validates the
// result. FormatAuto sniffs JSON by its leading brace.
func Parse(data []byte, format Format) (ResumeRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ResumeRecord{}, fmt.Errorf("resume: document is empty")
	}
	if format == FormatAuto {
		format = FormatYAML
		if trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var generic any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(trimmed, &generic); err != nil {
			return ResumeRecord{}, fmt.Errorf("resume: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(trimmed, &generic); err != nil {
			return ResumeRecord{}, fmt.Errorf("resume: decode yaml: %w", err)
		}
	default:
		return ResumeRecord{}, fmt.Errorf("resume: unsupported format %q", format)
	}

	if err := validateSchema(generic); err != nil {
		return ResumeRecord{}, err
	}

	// Round-trip through JSON so both encodings share the struct tags.
	normalised, err := json.Marshal(generic)
	if err != nil {
		return ResumeRecord{}, fmt.Errorf("resume: normalise document: %w", err)
	}
	var record ResumeRecord
	if err := json.Unmarshal(normalised, &record); err != nil {
		return ResumeRecord{}, fmt.Errorf("resume: decode record: %w", err)
	}

	record = sanitize(record)
	if err := record.Validate(); err != nil {
		return ResumeRecord{}, err
	}
	return record, nil
}

func sanitize(r ResumeRecord) ResumeRecord {
	out := r.Clone()
	out.Name = sanitizeText(out.Name)
	out.Title = sanitizeText(out.Title)
	out.Summary = sanitizeText(out.Summary)

	out.Contact.Email = sanitizeText(out.Contact.Email)
	out.Contact.Phone = sanitizeText(out.Contact.Phone)
	out.Contact.Location = sanitizeText(out.Contact.Location)
	out.Contact.Website = sanitizeLink(out.Contact.Website)
	out.Contact.LinkedIn = sanitizeLink(out.Contact.LinkedIn)
	out.Contact.GitHub = sanitizeLink(out.Contact.GitHub)

	for i := range out.Experience {
		exp := &out.Experience[i]
		exp.Company = sanitizeText(exp.Company)
		exp.Role = sanitizeText(exp.Role)
		exp.Start = sanitizeText(exp.Start)
		exp.End = sanitizeText(exp.End)
		sanitizeList(exp.Bullets)
	}
	for i := range out.Education {
		ed := &out.Education[i]
		ed.School = sanitizeText(ed.School)
		ed.Degree = sanitizeText(ed.Degree)
		ed.Start = sanitizeText(ed.Start)
		ed.End = sanitizeText(ed.End)
	}
	sanitizeList(out.Skills)
	sanitizeList(out.Languages)
	return out
}

func sanitizeList(items []string) {
	for i, item := range items {
		items[i] = sanitizeText(item)
	}
}

// sanitizeText removes markup and returns plain text; templates escape on
// output, so entities produced by the policy are decoded again.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictText().Sanitize(trimmed)))
}

// sanitizeLink keeps absolute http(s) URLs only.
func sanitizeLink(raw string) string {
	cleaned := sanitizeText(raw)
	if cleaned == "" {
		return ""
	}
	parsed, err := url.Parse(cleaned)
	if err != nil || parsed.Host == "" {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return parsed.String()
}

func strictText() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
