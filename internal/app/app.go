// Package app hosts the root Bubble Tea model: it owns the terminal size,
// draws the frame and hands everything else to the screen router.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/screens"
	"github.com/abhisek/mindcheck/internal/screens/home"
	"github.com/abhisek/mindcheck/internal/ui/layout"
)

type Options struct {
	Env *screens.Env

	// Status is shown on the right of the header, e.g. the analysis backend.
	Status string
}

type model struct {
	router        *router.Router
	status        string
	width, height int
}

func newModel(opts Options) model {
	return model{router: router.New(home.New(opts.Env)), status: opts.Status}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, m.router.Update(msg)
}

func (m model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m model) render() string {
	switch {
	case m.width == 0 || m.height == 0:
		return ""
	case layout.IsTooSmall(m.width, m.height):
		return layout.RenderMinSizeMessage(m.width, m.height)
	}
	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status, m.width)
	footer := layout.RenderFooter(footerHints(active), m.width)
	body := m.router.View(m.width, max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

var defaultHints = []layout.KeyHint{
	{Key: "Esc", Description: "Back"},
	{Key: "Ctrl+C", Description: "Quit"},
}

func footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return defaultHints
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	_, err := tea.NewProgram(newModel(opts), tea.WithContext(ctx)).Run()
	return err
}
