// Package text renders backend text for a terminal: chat replies as markdown
// and file contents with syntax highlighting.
package text

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	StyleAuto  = "auto"
	StyleNoTTY = "notty"

	defaultWrap = 80
)

// Markdown renders text with glamour. On any renderer failure the text is
// returned as is.
func Markdown(text string, width int, style string) string {
	if width <= 0 {
		width = defaultWrap
	}
	if style == "" {
		style = StyleAuto
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
