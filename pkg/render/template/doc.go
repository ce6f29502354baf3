// Package template defines the template engine seam used by the HTML
// renderer and the server views. The gotemplate subpackage provides the
// pongo2-backed implementation.
package template
