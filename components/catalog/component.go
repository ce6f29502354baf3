package catalog

import "net/http"

// Component bundles the catalog configuration with its handler and routing
// helpers so the server can hold one value for names, search and the JSON
// endpoint.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Entries returns the catalog served by the component.
func (c *Component) Entries() ([]Entry, error) {
	if c == nil {
		return DefaultEntries()
	}
	entries, err := c.opts.entries()
	if err != nil {
		return nil, err
	}
	return append([]Entry{}, entries...), nil
}

// Label returns the catalog name for id, or "Plantilla {id}".
func (c *Component) Label(id int) string {
	entries, err := c.Entries()
	if err != nil {
		return GenericLabel(id)
	}
	return Label(entries, id)
}

// Search runs Search against the component's entries and limits.
func (c *Component) Search(query string, limit int) ([]Entry, error) {
	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}
	return Search(entries, query, limit, c.Options()), nil
}

// Handler returns a net/http handler for catalog queries.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
