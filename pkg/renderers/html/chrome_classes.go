package html

// ChromeClass is a typed identifier for the CSS hooks on generated wrappers.
type ChromeClass string

const (
	ClassDocument ChromeClass = "cv-document"
	ClassRegion   ChromeClass = "cv-region"
	ClassSection  ChromeClass = "cv-section"
	ClassLabel    ChromeClass = "cv-label"
	ClassEntry    ChromeClass = "cv-entry"
	ClassChip     ChromeClass = "cv-chip"
)

// Hook names accepted in RenderOptions.ChromeClasses.
const (
	HookDocument = "document"
	HookRegion   = "region"
	HookSection  = "section"
	HookLabel    = "label"
	HookEntry    = "entry"
	HookChip     = "chip"
)

var defaultChrome = map[string]ChromeClass{
	HookDocument: ClassDocument,
	HookRegion:   ClassRegion,
	HookSection:  ClassSection,
	HookLabel:    ClassLabel,
	HookEntry:    ClassEntry,
	HookChip:     ClassChip,
}

// resolveChrome merges overrides over the defaults. Overrides are sanitised
// class lists; an override that sanitises to nothing keeps the default.
func resolveChrome(overrides map[string]string) map[string]string {
	out := make(map[string]string, len(defaultChrome))
	for hook, class := range defaultChrome {
		out[hook] = string(class)
	}
	for hook, value := range overrides {
		if _, known := defaultChrome[hook]; !known {
			continue
		}
		if cleaned := sanitizeClassList(value); cleaned != "" {
			out[hook] = cleaned
		}
	}
	return out
}
