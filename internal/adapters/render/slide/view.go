package slide

import (
	"fmt"
	"strings"

	"github.com/bnema/monster-deck/internal/application"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Localizer resolves UI labels by message id.
type Localizer interface {
	T(id string, data map[string]any) string
}

type RenderOptions struct {
	Width int
	Style string
}

// Frame is one display cycle: the controller snapshot plus the resolved body.
type Frame struct {
	DeckTitle string
	Snapshot  application.Snapshot
	Body      string
}

type Renderer struct {
	loc      Localizer
	styles   styles
	markdown *markdownRenderer
	progress progress.Model
	width    int
}

func NewRenderer(loc Localizer, opts RenderOptions) *Renderer {
	r := &Renderer{
		loc:      loc,
		styles:   newStyles(),
		markdown: newMarkdownRenderer(opts.Style),
		progress: progress.New(progress.WithGradient("#7C3AED", "#F472B6")),
	}
	r.SetWidth(opts.Width)

	return r
}

func (r *Renderer) SetWidth(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	r.width = width
	r.progress.Width = width
}

func (r *Renderer) Width() int {
	return r.width
}

// Page composes header, title, body and footer.
func (r *Renderer) Page(f Frame) (string, error) {
	body, err := r.Body(f)
	if err != nil {
		return "", err
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		r.Header(f),
		"",
		r.TitleBlock(f),
		body,
		r.Footer(f),
	), nil
}

func (r *Renderer) Header(f Frame) string {
	snap := f.Snapshot
	title := r.styles.deckTitle.Render(f.DeckTitle)
	position := r.styles.position.Render(r.loc.T("Position", map[string]any{
		"Module": snap.ModuleOrdinal,
		"Slide":  snap.Index + 1,
		"Total":  snap.Total,
	}))

	gap := r.width - lipgloss.Width(title) - lipgloss.Width(position)
	if gap < 1 {
		gap = 1
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), position)

	return lipgloss.JoinVertical(lipgloss.Left, line, r.progress.ViewAs(snap.Progress))
}

func (r *Renderer) TitleBlock(f Frame) string {
	slide := f.Snapshot.Slide
	view := viewFor(slide.Kind)

	icon := lipgloss.NewStyle().Foreground(view.accent).Render(view.icon)
	subtitle := r.styles.subtitle.Render(strings.ToUpper(slide.Subtitle))
	kind := r.styles.position.Render(fmt.Sprintf("[%s]", r.loc.T(view.labelID, nil)))

	center := lipgloss.NewStyle().Width(r.width).Align(lipgloss.Center)

	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(r.styles.title.Render(slide.Title)),
		center.Render(strings.Join([]string{icon, subtitle, kind}, " ")),
	)
}

// Body renders the slide's markdown inside the panel its kind asks for.
func (r *Renderer) Body(f Frame) (string, error) {
	view := viewFor(f.Snapshot.Slide.Kind)
	panelStyle, framed := r.styles.panelFor(view.panel)

	contentWidth := r.width
	if framed {
		contentWidth -= panelStyle.GetHorizontalFrameSize()
	}

	rendered, err := r.markdown.render(f.Body, contentWidth)
	if err != nil {
		return "", err
	}
	rendered = strings.TrimRight(rendered, "\n")

	if !framed {
		return rendered, nil
	}

	return panelStyle.Width(contentWidth + panelStyle.GetHorizontalPadding()).Render(rendered), nil
}

func (r *Renderer) Footer(f Frame) string {
	snap := f.Snapshot

	prevStyle := r.styles.navActive
	if snap.IsFirst {
		prevStyle = r.styles.navDisabled
	}
	prev := prevStyle.Render("← " + r.loc.T("NavPrevious", nil))

	nextStyle := r.styles.navPrimary
	nextLabel := r.loc.T("NavNext", nil)
	if snap.IsLast {
		nextStyle = r.styles.navDisabled
		nextLabel = r.loc.T("NavFinish", nil)
	}
	next := nextStyle.Render(nextLabel + " →")

	dots := r.dots(snap.Index, snap.Total)

	gap := r.width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(dots)
	left := gap / 2
	if left < 1 {
		left = 1
	}
	right := gap - left
	if right < 1 {
		right = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		prev,
		strings.Repeat(" ", left),
		dots,
		strings.Repeat(" ", right),
		next,
	)
}

func (r *Renderer) dots(current, total int) string {
	parts := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if i == current {
			parts = append(parts, r.styles.dotCurrent.Render("━━"))
			continue
		}
		parts = append(parts, r.styles.dotOther.Render("·"))
	}

	return strings.Join(parts, "")
}

// Menu lists slides grouped by module. current marks the slide on screen,
// cursor the highlighted row. It also reports the line the cursor row is on.
func (r *Renderer) Menu(menu []application.MenuGroup, current, cursor int) (string, int) {
	lines := []string{r.styles.menuTitle.Render(r.loc.T("MenuTitle", nil))}
	row := 1
	cursorLine := 0

	for _, group := range menu {
		heading := r.styles.menuModule.Render(group.Module)
		lines = append(lines, heading)
		row += lipgloss.Height(heading)
		for _, entry := range group.Entries {
			if entry.Index == cursor {
				cursorLine = row
			}
			lines = append(lines, r.menuLine(entry, current, cursor))
			row++
		}
	}

	lines = append(lines, "", r.styles.menuHint.Render(r.loc.T("MenuHint", nil)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...), cursorLine
}

func (r *Renderer) menuLine(entry application.MenuEntry, current, cursor int) string {
	marker := "  "
	if entry.Index == current {
		marker = r.styles.menuCurrent.Render("● ")
	}

	text := fmt.Sprintf("%02d  %s", entry.Index+1, entry.Title)
	if entry.Subtitle != "" {
		text += r.styles.menuSubtitle.Render(" — " + entry.Subtitle)
	}

	if entry.Index == cursor {
		return marker + r.styles.menuCursor.Render(text)
	}

	return marker + r.styles.menuEntry.Render(text)
}
