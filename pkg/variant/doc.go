// Package variant resolves a template id into the visual parameters used to
// render it: font family, colour palette, header treatment and layout
// arrangement. Resolution is pure modulo arithmetic over fixed tables, so the
// same id always yields the same descriptor and ids repeat every 40.
//
// The palettes and fonts are also published as a go-theme manifest so the
// renderers receive tokens and CSS variables through theme.RendererConfig.
package variant
