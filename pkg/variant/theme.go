package variant

import (
	"fmt"
	"path"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

const (
	// ThemeName is the manifest name every descriptor resolves against.
	ThemeName = "cv"
	// ThemeVersion tracks the token layout published in the manifest.
	ThemeVersion = "1.0.0"

	// AssetStylesheet and AssetScript are the manifest asset keys.
	AssetStylesheet = "stylesheet"
	AssetScript     = "script"

	fontVariantPrefix = "font-"
	cssVarPrefix      = "--cv-"
)

// FontVariant returns the manifest variant key holding f's tokens.
func FontVariant(f FontKey) string {
	return fontVariantPrefix + string(f)
}

// Manifest describes the palettes and fonts as a go-theme manifest. Palette
// variants carry primary/light/border tokens; font variants carry font tokens.
func Manifest() *theme.Manifest {
	variants := make(map[string]theme.Variant, len(palettes)+len(fonts))
	for _, p := range palettes {
		variants[p.Name] = theme.Variant{
			Tokens: map[string]string{
				"primary": p.Primary,
				"light":   p.Light,
				"border":  p.Border,
			},
		}
	}
	for _, f := range fonts {
		variants[FontVariant(f)] = theme.Variant{
			Tokens: map[string]string{
				"font":     f.Stack(),
				"font-url": f.StylesheetURL(),
			},
		}
	}

	first := palettes[0]
	return &theme.Manifest{
		Name:    ThemeName,
		Version: ThemeVersion,
		Tokens: map[string]string{
			"primary": first.Primary,
			"light":   first.Light,
			"border":  first.Border,
			"font":    fonts[0].Stack(),
			"ink":     "#1f2937",
			"muted":   "#6b7280",
		},
		Templates: map[string]string{
			"cv.document": "document.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				AssetStylesheet: "cvtemplates.css",
				AssetScript:     "print.js",
			},
		},
		Variants: variants,
	}
}

// NewProvider registers the manifest in a fresh go-theme registry.
func NewProvider() (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	if err := registry.Register(Manifest()); err != nil {
		return nil, fmt.Errorf("variant: register manifest: %w", err)
	}
	return registry, nil
}

// Selector resolves palette variants of the cv manifest.
type Selector struct {
	manifest *theme.Manifest
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector returns a selector over Manifest().
func NewSelector() *Selector {
	return &Selector{manifest: Manifest()}
}

// Select returns the selection for a palette variant. An empty name selects
// the cv theme and an empty variant selects the base tokens.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s == nil || s.manifest == nil {
		return nil, fmt.Errorf("variant: selector not initialised")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.manifest.Name
	}
	if name != s.manifest.Name {
		return nil, fmt.Errorf("variant: unknown theme %q", name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("variant: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: s.manifest,
	}, nil
}

var (
	defaultSelectorOnce sync.Once
	defaultSelector     *Selector
)

// RendererConfig resolves the descriptor's palette through the default
// selector and returns the renderer configuration for it.
func RendererConfig(d Descriptor) *theme.RendererConfig {
	defaultSelectorOnce.Do(func() {
		defaultSelector = NewSelector()
	})
	sel, err := defaultSelector.Select(ThemeName, d.Palette.Name)
	if err != nil {
		sel, _ = defaultSelector.Select(ThemeName, "")
	}
	return ConfigFromSelection(sel, d)
}

// ConfigFromSelection layers manifest tokens, the selected palette variant
// and the descriptor's font variant, then derives CSS variables from them.
func ConfigFromSelection(sel *theme.Selection, d Descriptor) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:   ThemeName,
		Variant: d.Palette.Name,
		Tokens:  map[string]string{},
		CSSVars: map[string]string{},
	}

	var manifest *theme.Manifest
	if sel != nil {
		if sel.Theme != "" {
			cfg.Theme = sel.Theme
		}
		if sel.Variant != "" {
			cfg.Variant = sel.Variant
		}
		manifest = sel.Manifest
	}

	if manifest != nil {
		mergeTokens(cfg.Tokens, manifest.Tokens)
		if v, ok := manifest.Variants[cfg.Variant]; ok {
			mergeTokens(cfg.Tokens, v.Tokens)
		}
		if v, ok := manifest.Variants[FontVariant(d.Font)]; ok {
			mergeTokens(cfg.Tokens, v.Tokens)
		}
		if len(manifest.Templates) > 0 {
			cfg.Partials = make(map[string]string, len(manifest.Templates))
			mergeTokens(cfg.Partials, manifest.Templates)
		}
	}

	// Descriptor values win so a foreign selection cannot change the variant.
	if d.Palette.Name != "" {
		cfg.Tokens["primary"] = d.Palette.Primary
		cfg.Tokens["light"] = d.Palette.Light
		cfg.Tokens["border"] = d.Palette.Border
	}
	if d.Font != "" {
		cfg.Tokens["font"] = d.Font.Stack()
		cfg.Tokens["font-url"] = d.Font.StylesheetURL()
	}

	for _, key := range []string{"primary", "light", "border", "font"} {
		if value, ok := cfg.Tokens[key]; ok {
			cfg.CSSVars[cssVarPrefix+key] = value
		}
	}

	cfg.AssetURL = assetResolver(manifest)
	return cfg
}

func assetResolver(manifest *theme.Manifest) func(string) string {
	prefix := "/assets"
	var files map[string]string
	if manifest != nil {
		if manifest.Assets.Prefix != "" {
			prefix = manifest.Assets.Prefix
		}
		files = manifest.Assets.Files
	}
	return func(key string) string {
		key = strings.TrimSpace(key)
		if key == "" {
			return ""
		}
		if file, ok := files[key]; ok {
			key = file
		}
		if strings.Contains(key, "://") {
			return key
		}
		return path.Join(prefix, key)
	}
}

func mergeTokens(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}
