// Package resumeloader reads resume documents from files, fs.FS entries or
// HTTP(S) URLs.
package resumeloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-cvtemplates/pkg/resume"
)

// Options configures a Loader.
type Options struct {
	FileSystem     fs.FS
	HTTPClient     *http.Client
	AllowHTTP      bool
	RequestTimeout time.Duration
}

// Loader fetches resume documents from the configured strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ resume.Loader = (*Loader)(nil)

// New constructs a Loader from options.
func New(options Options) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTP:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load reads the source and wraps the payload in a resume.Document.
func (l *Loader) Load(ctx context.Context, src resume.Source) (resume.Document, error) {
	if src == nil {
		return resume.Document{}, errors.New("resumeloader: source is nil")
	}
	if ctx == nil {
		return resume.Document{}, errors.New("resumeloader: context is required")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case resume.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case resume.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case resume.SourceKindURL:
		if !l.allowHTTP {
			return resume.Document{}, errors.New("resumeloader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("resumeloader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return resume.Document{}, err
	}

	return resume.NewDocument(src, data)
}

// LoadRecord loads and parses the source in one step.
func (l *Loader) LoadRecord(ctx context.Context, src resume.Source) (resume.ResumeRecord, error) {
	doc, err := l.Load(ctx, src)
	if err != nil {
		return resume.ResumeRecord{}, err
	}
	record, err := doc.Record()
	if err != nil {
		return resume.ResumeRecord{}, fmt.Errorf("resumeloader: %s: %w", doc.Location(), err)
	}
	return record, nil
}
