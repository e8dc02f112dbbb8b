package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const DefaultWidth = 100

// Terminal styles Markdown for a terminal. If the renderer cannot be built
// or fails, the raw Markdown is returned.
func Terminal(md string, width int) string {
	if md == "" {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n ") + "\n"
}
