package variant

import "net/url"

// FontKey names one of the eight supported font families.
type FontKey string

const (
	FontInter        FontKey = "inter"
	FontRoboto       FontKey = "roboto"
	FontPoppins      FontKey = "poppins"
	FontMontserrat   FontKey = "montserrat"
	FontMerriweather FontKey = "merriweather"
	FontPlayfair     FontKey = "playfair"
	FontSourceSans   FontKey = "source-sans"
	FontLora         FontKey = "lora"
)

type fontFace struct {
	family string
	stack  string
}

var fonts = [...]FontKey{
	FontInter,
	FontRoboto,
	FontPoppins,
	FontMontserrat,
	FontMerriweather,
	FontPlayfair,
	FontSourceSans,
	FontLora,
}

var fontFaces = map[FontKey]fontFace{
	FontInter:        {family: "Inter", stack: "'Inter', system-ui, sans-serif"},
	FontRoboto:       {family: "Roboto", stack: "'Roboto', system-ui, sans-serif"},
	FontPoppins:      {family: "Poppins", stack: "'Poppins', system-ui, sans-serif"},
	FontMontserrat:   {family: "Montserrat", stack: "'Montserrat', system-ui, sans-serif"},
	FontMerriweather: {family: "Merriweather", stack: "'Merriweather', Georgia, serif"},
	FontPlayfair:     {family: "Playfair Display", stack: "'Playfair Display', Georgia, serif"},
	FontSourceSans:   {family: "Source Sans 3", stack: "'Source Sans 3', system-ui, sans-serif"},
	FontLora:         {family: "Lora", stack: "'Lora', Georgia, serif"},
}

// Fonts returns the font table in resolution order.
func Fonts() []FontKey {
	out := make([]FontKey, len(fonts))
	copy(out, fonts[:])
	return out
}

// Family returns the display family name, e.g. "Playfair Display".
func (f FontKey) Family() string {
	return fontFaces[f].family
}

// Stack returns a CSS font-family value with generic fallbacks.
func (f FontKey) Stack() string {
	if face, ok := fontFaces[f]; ok {
		return face.stack
	}
	return "system-ui, sans-serif"
}

// StylesheetURL points at the Google Fonts stylesheet for the family.
func (f FontKey) StylesheetURL() string {
	face, ok := fontFaces[f]
	if !ok {
		return ""
	}
	q := url.Values{}
	q.Set("family", face.family+":wght@400;600;700")
	q.Set("display", "swap")
	return "https://fonts.googleapis.com/css2?" + q.Encode()
}
