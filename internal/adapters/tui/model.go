package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/monster-deck/internal/adapters/render/slide"
	"github.com/bnema/monster-deck/internal/application"
	"github.com/bnema/monster-deck/internal/domain"
	"github.com/bnema/monster-deck/internal/ports"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type Options struct {
	DeckTitle string
	Width     int
	Height    int
	Logger    *zap.Logger
	// Follow redraws when something else, such as the remote, moves the
	// controller.
	Follow bool
}

type stateChangedMsg struct{}

type follower struct {
	changes chan struct{}
	done    chan struct{}
	cancel  func()
	once    sync.Once
}

func newFollower(controller *application.Controller) *follower {
	f := &follower{
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	f.cancel = controller.Watch(func(application.Snapshot) {
		select {
		case f.changes <- struct{}{}:
		default:
		}
	})

	return f
}

func (f *follower) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-f.changes:
			return stateChangedMsg{}
		case <-f.done:
			return nil
		}
	}
}

func (f *follower) stop() {
	f.once.Do(func() {
		f.cancel()
		close(f.done)
	})
}

// Model is the interactive presenter. It forwards user actions to the
// controller and redraws from the controller's snapshot.
type Model struct {
	ctx        context.Context
	controller *application.Controller
	views      ports.ViewSource
	renderer   *slide.Renderer
	logger     *zap.Logger
	deckTitle  string

	menu   []application.MenuGroup
	order  []int
	cursor int

	keys     keyMap
	help     help.Model
	body     viewport.Model
	menuView viewport.Model

	follow *follower
	bodies map[domain.ViewRef]string
	shown  int
	width  int
	height int
	err    error
}

func NewModel(ctx context.Context, controller *application.Controller, views ports.ViewSource, renderer *slide.Renderer, opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	menu := application.BuildMenu(controller.Registry())
	m := Model{
		ctx:        ctx,
		controller: controller,
		views:      views,
		renderer:   renderer,
		logger:     opts.Logger,
		deckTitle:  opts.DeckTitle,
		menu:       menu,
		order:      application.MenuOrder(menu),
		keys:       defaultKeyMap(),
		help:       help.New(),
		body:       viewport.New(opts.Width, opts.Height),
		menuView:   viewport.New(opts.Width, opts.Height),
		bodies:     make(map[domain.ViewRef]string),
		shown:      -1,
	}
	if opts.Follow {
		m.follow = newFollower(controller)
	}
	m.syncCursor()
	m.resize(opts.Width, opts.Height)

	return m
}

// Err is the contract violation that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if m.follow != nil {
		return m.follow.wait()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case stateChangedMsg:
		m.render()
		if m.err != nil {
			return m, tea.Quit
		}
		if m.controller.IsMenuOpen() {
			m.refreshMenu()
		}
		return m, m.follow.wait()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
			return m, nil
		}

		if m.controller.IsMenuOpen() {
			return m.updateMenu(msg)
		}
		return m.updateSlide(msg)
	}

	return m, nil
}

func (m Model) updateSlide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		if m.controller.Next() {
			return m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		if m.controller.Previous() {
			return m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.First):
		m.controller.First()
		return m.refresh()
	case key.Matches(msg, m.keys.Last):
		m.controller.Last()
		return m.refresh()
	case key.Matches(msg, m.keys.Menu):
		m.controller.OpenMenu()
		m.syncCursor()
		m.refreshMenu()
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.refreshMenu()
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}
		m.refreshMenu()
	case key.Matches(msg, m.keys.Select):
		index := m.order[m.cursor]
		if err := m.controller.JumpTo(index); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.controller.CloseMenu()
		return m.refresh()
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
		m.controller.CloseMenu()
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.renderer.SetWidth(width)
	m.help.Width = width

	chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.footer())
	bodyHeight := height - chrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	m.body.Width = width
	m.body.Height = bodyHeight
	m.menuView.Width = width
	m.menuView.Height = bodyHeight

	m.render()
	m.refreshMenu()
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.render()
	if m.err != nil {
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) render() {
	frame, err := m.frame()
	if err != nil {
		m.err = err
		return
	}

	title := m.renderer.TitleBlock(frame)
	body, err := m.renderer.Body(frame)
	if err != nil {
		m.err = fmt.Errorf("render slide %q: %w", frame.Snapshot.Slide.ID, err)
		return
	}

	m.body.SetContent(lipgloss.JoinVertical(lipgloss.Left, title, body))
	if frame.Snapshot.Index != m.shown {
		m.body.GotoTop()
		m.shown = frame.Snapshot.Index
	}
}

func (m *Model) refreshMenu() {
	content, cursorLine := m.renderer.Menu(m.menu, m.controller.Index(), m.order[m.cursor])
	m.menuView.SetContent(content)

	if cursorLine < m.menuView.YOffset {
		m.menuView.SetYOffset(cursorLine)
	} else if cursorLine >= m.menuView.YOffset+m.menuView.Height {
		m.menuView.SetYOffset(cursorLine - m.menuView.Height + 1)
	}
}

func (m *Model) syncCursor() {
	current := m.controller.Index()
	for i, index := range m.order {
		if index == current {
			m.cursor = i
			return
		}
	}
}

func (m *Model) frame() (slide.Frame, error) {
	snap := m.controller.Snapshot()

	body, ok := m.bodies[snap.Slide.View]
	if !ok {
		var err error
		body, err = m.views.Body(m.ctx, snap.Slide.View)
		if err != nil {
			m.logger.Error("resolve slide view", zap.String("slide", string(snap.Slide.ID)), zap.Error(err))
			return slide.Frame{}, fmt.Errorf("resolve view for slide %q: %w", snap.Slide.ID, err)
		}
		m.bodies[snap.Slide.View] = body
	}

	return slide.Frame{DeckTitle: m.deckTitle, Snapshot: snap, Body: body}, nil
}

func (m Model) header() string {
	return m.renderer.Header(slide.Frame{DeckTitle: m.deckTitle, Snapshot: m.controller.Snapshot()})
}

func (m Model) footer() string {
	f := slide.Frame{DeckTitle: m.deckTitle, Snapshot: m.controller.Snapshot()}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderer.Footer(f), m.help.View(m.keys))
}

func (m Model) View() string {
	if m.err != nil {
		return ""
	}

	main := m.body.View()
	if m.controller.IsMenuOpen() {
		main = m.menuView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), main, m.footer())
}

// Run drives the model until the user quits. A contract violation recorded by
// the model is returned as the error.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	if m.follow != nil {
		defer m.follow.stop()
	}

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, options...)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run presenter: %w", err)
	}

	final, ok := finalModel.(Model)
	if !ok {
		return fmt.Errorf("unexpected final presenter model type %T", finalModel)
	}

	return final.Err()
}
