// Package markup holds the small text builders shared by the adapters:
// entity escaping and the asterisk/colon token syntax of the drag libraries.
package markup

import "strings"

// Replacements are computed against the original string in one pass, so an
// "&" produced by an earlier replacement is never re-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape must be applied exactly once per field.
func Escape(s string) string { return escaper.Replace(s) }

// Emphasis marks s as a draggable or gap token: *s*.
func Emphasis(s string) string { return "*" + s + "*" }

// Dropzone marks s as a group member: :s:.
func Dropzone(s string) string { return ":" + s + ":" }

func Paragraph(s string) string { return "<p>" + s + "</p>" }

func Div(s string) string { return "<div>" + s + "</div>" }

// EmphasizeAll wraps every element and joins them with sep.
func EmphasizeAll(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(Emphasis(p))
	}
	return b.String()
}

// CountEmphasis counts complete *...* tokens.
func CountEmphasis(s string) int {
	return strings.Count(s, "*") / 2
}
