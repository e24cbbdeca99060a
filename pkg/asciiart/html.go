package asciiart

import "strings"

const (
	htmlPreStyle        = "font-family: monospace; line-height: 1; margin: 0; white-space: pre;"
	htmlColoredPreStyle = htmlPreStyle + " background-color: #000;"

	htmlPreClose  = "</pre>"
	htmlSpanOpen  = `<span style="color: `
	htmlSpanMid   = `">`
	htmlSpanClose = "</span>"
)

// htmlEscaper escapes the characters that could open a tag, an attribute value or an entity.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"`", "&#96;",
)

// EscapeHTML escapes & < > " ' and ` as HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// htmlPreOpen returns the opening tag of the <pre> block that wraps the whole output.
func htmlPreOpen(colored bool) string {
	if colored {
		return `<pre style="` + htmlColoredPreStyle + `">`
	}
	return `<pre style="` + htmlPreStyle + `">`
}

// writeHTMLCell writes one already-escaped glyph, wrapped in a colored span when colored is set.
func writeHTMLCell(sb *strings.Builder, escapedGlyph string, c CellColor, colored bool) {
	if !colored {
		sb.WriteString(escapedGlyph)
		return
	}

	sb.WriteString(htmlSpanOpen)
	sb.WriteString(c.CSS())
	sb.WriteString(htmlSpanMid)
	sb.WriteString(escapedGlyph)
	sb.WriteString(htmlSpanClose)
}
