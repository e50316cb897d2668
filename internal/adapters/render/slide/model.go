package slide

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	frame    Frame
	renderer *Renderer
	output   string
	err      error
}

func newModel(frame Frame, renderer *Renderer) model {
	return model{
		frame:    frame,
		renderer: renderer,
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output, m.err = m.renderer.Page(m.frame)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws a single frame without taking over the terminal.
func Render(frame Frame, loc Localizer, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(frame, NewRenderer(loc, opts)),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}
	if rendered.err != nil {
		return "", rendered.err
	}

	return rendered.View(), nil
}
