// Package gallery coordinates the path from a template id to rendered output:
// it looks up the catalog label, resolves the variant, composes the layout,
// selects theme tokens and hands the result to a named renderer.
package gallery
