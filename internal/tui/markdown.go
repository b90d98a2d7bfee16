package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour renderers are cached by wrap width. Building one is expensive
// and the width only changes when the terminal is resized.
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderMarkdown renders a todo description as terminal markdown,
// falling back to the raw text if the renderer fails.
func renderMarkdown(text string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
