// Package familyspec parses comma-separated font family specifications
// such as `Arial, "DejaVu Sans", Noto`.
package familyspec

import "strings"

// Parse splits spec into family names, in order.
//
// Each comma-separated token is trimmed of spaces and tabs and stripped of
// one pair of surrounding double quotes. Tokens left empty are dropped.
// There is no escaping: quotes and commas inside names are not supported.
func Parse(spec string) []string {
	var names []string
	for token := range strings.SplitSeq(spec, ",") {
		if name := unquote(strings.Trim(token, " \t")); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// unquote strips one matching pair of double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Join renders names as a specification that Parse reads back.
// Names containing spaces or tabs are quoted.
func Join(names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		if strings.ContainsAny(name, " \t") {
			b.WriteByte('"')
			b.WriteString(name)
			b.WriteByte('"')
		} else {
			b.WriteString(name)
		}
	}
	return b.String()
}
