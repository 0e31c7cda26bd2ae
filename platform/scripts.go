package platform

import (
	"strings"

	"github.com/go-text/typesetting/language"
)

// ScriptTable lists fallback family names per Unicode script.
type ScriptTable map[language.Script][]string

// Fallbacks implements fontsel.SystemFallbacks. The requested family name
// does not influence the result.
func (t ScriptTable) Fallbacks(_ string, r rune) []string {
	return t[language.LookupScript(r)]
}

// DefaultScriptTable returns fallbacks for common non-Latin scripts.
func DefaultScriptTable() ScriptTable {
	cjk := []string{"Noto Sans CJK SC", "Noto Sans CJK JP", "WenQuanYi Zen Hei", "Droid Sans Fallback"}
	return ScriptTable{
		language.Han:        cjk,
		language.Hiragana:   {"Noto Sans CJK JP", "Droid Sans Fallback"},
		language.Katakana:   {"Noto Sans CJK JP", "Droid Sans Fallback"},
		language.Hangul:     {"Noto Sans CJK KR", "NanumGothic", "Droid Sans Fallback"},
		language.Arabic:     {"Noto Naskh Arabic", "Noto Sans Arabic", "DejaVu Sans"},
		language.Hebrew:     {"Noto Sans Hebrew", "DejaVu Sans"},
		language.Devanagari: {"Noto Sans Devanagari", "Lohit Devanagari"},
		language.Thai:       {"Noto Sans Thai", "Loma"},
		language.Cyrillic:   {"DejaVu Sans", "Noto Sans"},
		language.Greek:      {"DejaVu Sans", "Noto Sans"},
	}
}

var scriptNames = map[string]language.Script{
	"latin":      language.Latin,
	"greek":      language.Greek,
	"cyrillic":   language.Cyrillic,
	"armenian":   language.Armenian,
	"hebrew":     language.Hebrew,
	"arabic":     language.Arabic,
	"devanagari": language.Devanagari,
	"bengali":    language.Bengali,
	"tamil":      language.Tamil,
	"thai":       language.Thai,
	"georgian":   language.Georgian,
	"hangul":     language.Hangul,
	"hiragana":   language.Hiragana,
	"katakana":   language.Katakana,
	"han":        language.Han,
}

// ScriptByName returns the script of a lower- or mixed-case English
// script name such as "Han" or "Cyrillic".
func ScriptByName(name string) (language.Script, bool) {
	s, ok := scriptNames[strings.ToLower(name)]
	return s, ok
}
