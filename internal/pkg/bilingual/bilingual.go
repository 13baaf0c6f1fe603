package bilingual

// Lang is a display language code.
type Lang string

const (
	LangBn Lang = "bn" // Bengali, the canonical language
	LangEn Lang = "en"
)

// Normalize maps arbitrary input to a supported language, defaulting to Bengali.
func Normalize(raw string) Lang {
	switch raw {
	case "en", "en-US", "en-GB":
		return LangEn
	default:
		return LangBn
	}
}

// Resolve returns the best available text for the requested language.
// Bengali is canonical; English falls back to Bengali when the English
// field is empty. Whitespace-only text counts as present.
func Resolve(bn, en string, lang Lang) string {
	if lang == LangEn && en != "" {
		return en
	}
	return bn
}
