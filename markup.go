package listkit

import (
	"html"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Markup is the tiny subset understood by detail rows: plain text with
// escaped entities, newlines separating lines, and <small> spans that
// render dim.

// EscapeMarkup escapes text for inclusion in markup. The characters
// & < > ' " become entities.
func EscapeMarkup(s string) string {
	return html.EscapeString(s)
}

const (
	smallOpen  = "<small>"
	smallClose = "</small>"
)

// markupSpan is a run of text with uniform styling.
type markupSpan struct {
	text  string // unescaped
	small bool
}

// parseMarkup splits markup into lines of styled spans, resolving
// entities. Unknown tags are left verbatim.
func parseMarkup(markup string) [][]markupSpan {
	var lines [][]markupSpan
	for _, rawLine := range strings.Split(markup, "\n") {
		var spans []markupSpan
		small := false
		rest := rawLine
		for rest != "" {
			idx := strings.IndexByte(rest, '<')
			if idx < 0 {
				spans = appendSpan(spans, rest, small)
				break
			}
			spans = appendSpan(spans, rest[:idx], small)
			rest = rest[idx:]
			switch {
			case strings.HasPrefix(rest, smallOpen):
				small = true
				rest = rest[len(smallOpen):]
			case strings.HasPrefix(rest, smallClose):
				small = false
				rest = rest[len(smallClose):]
			default:
				// Not a tag we know. Treat the '<' as literal text.
				spans = appendSpan(spans, "<", small)
				rest = rest[1:]
			}
		}
		lines = append(lines, spans)
	}
	return lines
}

func appendSpan(spans []markupSpan, escaped string, small bool) []markupSpan {
	if escaped == "" {
		return spans
	}
	return append(spans, markupSpan{text: html.UnescapeString(escaped), small: small})
}

// RenderMarkup draws markup into the buffer at x,y, clipped to maxWidth
// cells per line. Returns the number of lines drawn.
func RenderMarkup(buf *Buffer, x, y, maxWidth int, markup string, style Style) int {
	lines := parseMarkup(markup)
	for i, spans := range lines {
		cx := x
		remaining := maxWidth
		for _, span := range spans {
			if remaining <= 0 {
				break
			}
			st := style
			if span.small {
				st = st.Dim()
			}
			n := buf.WriteStringClipped(cx, y+i, span.text, st, remaining)
			cx += n
			remaining -= n
		}
	}
	return len(lines)
}

// markupExtent measures the rendered width and height of markup in cells.
func markupExtent(markup string) (width, height int) {
	lines := parseMarkup(markup)
	for _, spans := range lines {
		w := 0
		for _, span := range spans {
			w += runewidth.StringWidth(span.text)
		}
		if w > width {
			width = w
		}
	}
	return width, len(lines)
}
