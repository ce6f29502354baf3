package resume

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is returned (wrapped) when a record misses required fields.
var ErrInvalidRecord = errors.New("resume: invalid record")

// ResumeRecord is the fixed-shape resume rendered by every template.
type ResumeRecord struct {
	Name       string       `json:"name" yaml:"name" validate:"required"`
	Title      string       `json:"title" yaml:"title" validate:"required"`
	Contact    Contact      `json:"contact" yaml:"contact"`
	Summary    string       `json:"summary" yaml:"summary" validate:"required"`
	Experience []Experience `json:"experience" yaml:"experience" validate:"dive"`
	Education  []Education  `json:"education" yaml:"education" validate:"dive"`
	Skills     []string     `json:"skills" yaml:"skills"`
	Languages  []string     `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// Contact groups the contact line. Website, LinkedIn and GitHub are optional;
// an empty string means absent.
type Contact struct {
	Email    string `json:"email" yaml:"email" validate:"required"`
	Phone    string `json:"phone" yaml:"phone" validate:"required"`
	Location string `json:"location" yaml:"location" validate:"required"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty"`
}

// Experience is one position; Bullets keep their input order.
type Experience struct {
	Company string   `json:"company" yaml:"company" validate:"required"`
	Role    string   `json:"role" yaml:"role" validate:"required"`
	Start   string   `json:"start" yaml:"start"`
	End     string   `json:"end" yaml:"end"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

// Education is one degree entry.
type Education struct {
	School string `json:"school" yaml:"school" validate:"required"`
	Degree string `json:"degree" yaml:"degree" validate:"required"`
	Start  string `json:"start" yaml:"start"`
	End    string `json:"end" yaml:"end"`
}

// HasWebsite reports whether the optional website link is present.
func (c Contact) HasWebsite() bool { return strings.TrimSpace(c.Website) != "" }

// HasLinkedIn reports whether the optional LinkedIn link is present.
func (c Contact) HasLinkedIn() bool { return strings.TrimSpace(c.LinkedIn) != "" }

// HasGitHub reports whether the optional GitHub link is present.
func (c Contact) HasGitHub() bool { return strings.TrimSpace(c.GitHub) != "" }

// HasLanguages reports whether the Languages section should be rendered.
func (r ResumeRecord) HasLanguages() bool { return len(r.Languages) > 0 }

// Clone returns a deep copy so callers can derive data without touching the
// shared record.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	if r.Experience != nil {
		out.Experience = make([]Experience, len(r.Experience))
		for i, exp := range r.Experience {
			exp.Bullets = cloneStrings(exp.Bullets)
			out.Experience[i] = exp
		}
	}
	if r.Education != nil {
		out.Education = append([]Education(nil), r.Education...)
	}
	out.Skills = cloneStrings(r.Skills)
	out.Languages = cloneStrings(r.Languages)
	return out
}

var (
	validateOnce sync.Once
	structCheck  *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		structCheck = validator.New(validator.WithRequiredStructEnabled())
	})
	return structCheck
}

// Validate checks the required, non-optional fields.
func (r ResumeRecord) Validate() error {
	err := recordValidator().Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Namespace())
	}
	return fmt.Errorf("%w: missing %s", ErrInvalidRecord, strings.Join(missing, ", "))
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
