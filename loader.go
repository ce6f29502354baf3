package cvtemplates

import (
	"context"
	"fmt"

	"github.com/goliatone/go-cvtemplates/internal/resumeloader"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
)

// LoaderOptions aliases the loader configuration.
type LoaderOptions = resumeloader.Options

// NewLoader constructs a resume loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options LoaderOptions) resume.Loader {
	return resumeloader.New(options)
}

// LoadResume loads, parses and validates a resume document from src.
func LoadResume(ctx context.Context, loader resume.Loader, src resume.Source) (resume.ResumeRecord, error) {
	if loader == nil {
		loader = resumeloader.New(resumeloader.Options{})
	}
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return resume.ResumeRecord{}, fmt.Errorf("cvtemplates: load resume: %w", err)
	}
	record, err := doc.Record()
	if err != nil {
		return resume.ResumeRecord{}, fmt.Errorf("cvtemplates: parse resume: %w", err)
	}
	return record, nil
}
