package models

// DefaultFont is the Latin-script fallback used when no font is mapped for
// the requested language.
const DefaultFont = "NotoSans"

// SupportedLanguages lists the languages offered by the form surface, in
// display order.
var SupportedLanguages = []string{
	"English",
	"Hindi",
	"Bengali",
	"Telugu",
	"Marathi",
	"Tamil",
	"Gujarati",
	"Kannada",
	"Malayalam",
}

// languageFonts maps each supported language to the single font face covering
// its script. Hindi and Marathi share Devanagari.
var languageFonts = map[string]string{
	"English":   "NotoSans",
	"Hindi":     "NotoSansDevanagari",
	"Bengali":   "NotoSansBengali",
	"Telugu":    "NotoSansTelugu",
	"Marathi":   "NotoSansDevanagari",
	"Tamil":     "NotoSansTamil",
	"Gujarati":  "NotoSansGujarati",
	"Kannada":   "NotoSansKannada",
	"Malayalam": "NotoSansMalayalam",
}

// FontForLanguage returns the font face for a language, falling back to
// DefaultFont for unknown languages.
func FontForLanguage(language string) string {
	if font, ok := languageFonts[language]; ok {
		return font
	}
	return DefaultFont
}

// IsSupportedLanguage reports whether the language is one of the nine the
// form surface offers.
func IsSupportedLanguage(language string) bool {
	_, ok := languageFonts[language]
	return ok
}
