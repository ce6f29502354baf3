package gotemplate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-cvtemplates/pkg/render/template"
)

// DefaultExtension is appended to template names that carry no extension.
const DefaultExtension = ".tmpl"

var errNilEngine = errors.New("gotemplate: engine is nil")

// Option configures the pongo2 engine before construction.
type Option func(*settings)

type settings struct {
	setName string
	dir     string
	files   fs.FS
	ext     string
	funcs   map[string]any
	globals map[string]any
}

func defaultSettings() *settings {
	return &settings{setName: "cvtemplates", ext: DefaultExtension}
}

// WithBaseDir loads templates from a directory on disk. It is searched before
// any fs.FS given with WithFS.
func WithBaseDir(dir string) Option {
	return func(s *settings) { s.dir = strings.TrimSpace(dir) }
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(s *settings) { s.files = files }
}

// WithExtension replaces DefaultExtension. The leading dot is optional.
func WithExtension(ext string) Option {
	return func(s *settings) {
		ext = strings.TrimSpace(ext)
		switch {
		case ext == "":
		case strings.HasPrefix(ext, "."):
			s.ext = ext
		default:
			s.ext = "." + ext
		}
	}
}

// WithTemplateFunc exposes funcs to templates. pongo2.FilterFunction values
// become filters; other functions become globals.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(s *settings) { s.funcs = mergeTrimmed(s.funcs, funcs) }
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(s *settings) { s.globals = mergeTrimmed(s.globals, data) }
}

// WithSetName names the pongo2 template set, which only shows in errors.
func WithSetName(name string) Option {
	return func(s *settings) {
		if name = strings.TrimSpace(name); name != "" {
			s.setName = name
		}
	}
}

func mergeTrimmed(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[strings.TrimSpace(k)] = v
	}
	return dst
}

func (s *settings) loaders() ([]pongo2.TemplateLoader, error) {
	if s.dir == "" && s.files == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}
	var out []pongo2.TemplateLoader
	if s.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(s.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		out = append(out, local)
	}
	if s.files != nil {
		out = append(out, pongo2.NewFSLoader(s.files))
	}
	return out, nil
}

// Engine renders pongo2 templates. Templates loaded by path are parsed once
// and reused.
type Engine struct {
	mu     sync.RWMutex
	set    *pongo2.TemplateSet
	parsed map[string]*pongo2.Template
	ext    string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. Either WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	s := defaultSettings()
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	loaders, err := s.loaders()
	if err != nil {
		return nil, err
	}
	registerDefaultFilters()

	e := &Engine{
		set:    pongo2.NewSet(s.setName, loaders...),
		parsed: make(map[string]*pongo2.Template),
		ext:    s.ext,
	}
	if err := e.GlobalContext(s.globals); err != nil {
		return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
	}
	for name, fn := range s.funcs {
		if err := e.bind(name, fn); err != nil {
			return nil, fmt.Errorf("gotemplate: register template func %q: %w", name, err)
		}
	}
	return e, nil
}

// Render dispatches to RenderString when name looks like template source and
// to RenderTemplate otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the template at name, adding the engine extension
// when name lacks it.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, fmt.Sprintf("template %q", name), data, out)
}

// RenderString parses and executes source without caching it.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return e.execute(tmpl, "template string", data, out)
}

// RegisterFilter adds fn as a pongo2 filter. Filters are global to the
// process; a name that is already taken is rejected.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		v, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(v), nil
	})
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errNilEngine
	}
	if data == nil {
		return nil
	}
	ctx, err := toContext(data)
	if err != nil {
		return err
	}
	e.withGlobals(func(g pongo2.Context) { g.Update(ctx) })
	return nil
}

func (e *Engine) withGlobals(fn func(pongo2.Context)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	fn(e.set.Globals)
}

// bind exposes one WithTemplateFunc entry. Names already registered as
// filters and values that are not functions are skipped.
func (e *Engine) bind(name string, fn any) error {
	if name == "" || fn == nil {
		return nil
	}
	if filter, ok := fn.(pongo2.FilterFunction); ok {
		if pongo2.FilterExists(name) {
			return nil
		}
		return pongo2.RegisterFilter(name, filter)
	}
	if reflect.ValueOf(fn).Kind() != reflect.Func {
		return nil
	}
	e.withGlobals(func(g pongo2.Context) { g[name] = fn })
	return nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.parsed[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.parsed[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.parsed[path] = tmpl
	return tmpl, nil
}

// execute runs tmpl under the read lock so globals cannot change mid-render,
// then writes the result to every non-nil writer.
func (e *Engine) execute(tmpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var sb strings.Builder
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &sb)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", label, err)
	}

	rendered := sb.String()
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", fmt.Errorf("gotemplate: write output: %w", err)
		}
	}
	return rendered, nil
}

// toContext turns template data into a pongo2.Context. Maps are walked as-is;
// anything else is encoded through its JSON tags and must yield an object.
func toContext(data any) (pongo2.Context, error) {
	var fields map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		fields = v
	case map[string]any:
		fields = v
	default:
		decoded, err := viaJSON(v)
		if err != nil {
			return nil, err
		}
		m, ok := decoded.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("gotemplate: %T does not encode to an object", data)
		}
		fields = m
	}

	ctx := make(pongo2.Context, len(fields))
	for key, value := range fields {
		if key = strings.TrimSpace(key); key == "" {
			continue
		}
		n, err := normalize(value)
		if err != nil {
			return nil, err
		}
		ctx[key] = n
	}
	return ctx, nil
}

// normalize rewrites value into maps, slices and scalars pongo2 can walk.
// Scalars and functions pass through untouched so integers keep printing as
// integers; structs and typed collections go through JSON first.
func normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Func, reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return value, nil
	}

	switch v := value.(type) {
	case pongo2.Context:
		return normalizeMap(v)
	case map[string]any:
		return normalizeMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}

	decoded, err := viaJSON(value)
	if err != nil {
		return nil, err
	}
	switch decoded.(type) {
	case map[string]any, []any:
		return normalize(decoded)
	}
	return decoded, nil
}

func normalizeMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for k, v := range in {
		n, err := normalize(v)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}

func viaJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
