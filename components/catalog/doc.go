// Package catalog provides the embedded list of template names shown in the
// gallery, search helpers, and a small net/http handler that returns the
// catalog as JSON.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. The backing data is loaded from the
// embedded data/templates.yaml file.
package catalog
