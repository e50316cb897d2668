package slide

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const (
	defaultWidth    = 80
	minContentWidth = 20
)

// markdownRenderer keeps one glamour renderer and rebuilds it only when the
// wrap width changes.
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "dark"
	}

	return &markdownRenderer{style: style}
}

func (m *markdownRenderer) render(markdown string, width int) (string, error) {
	if width < minContentWidth {
		width = minContentWidth
	}

	if m.renderer == nil || m.width != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		m.renderer = renderer
		m.width = width
	}

	out, err := m.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return out, nil
}
