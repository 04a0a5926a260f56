// Package home is the entry screen: start a test, view the last result,
// browse history or quit.
package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/results"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/screens"
	"github.com/abhisek/mindcheck/internal/screens/history"
	"github.com/abhisek/mindcheck/internal/screens/questionnaire"
	resultsscreen "github.com/abhisek/mindcheck/internal/screens/results"
	"github.com/abhisek/mindcheck/internal/ui/components"
	"github.com/abhisek/mindcheck/internal/ui/layout"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

// noResultMsg reports that "Last result" was chosen with nothing stored.
type noResultMsg struct{}

type loadFailedMsg struct {
	err error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	env  *screens.Env
	menu components.Menu
	note string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ router.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screens.Env) *HomeScreen {
	h := &HomeScreen{env: env}

	items := []components.MenuItem{
		{Label: "Start test", Hint: fmt.Sprintf("%d questions, about 2 minutes", env.Catalog.Len()), Action: h.startTest},
		{Label: "Last result", Action: h.lastResult},
		{Label: "History", Disabled: env.Events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(env.Events)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startTest() tea.Cmd {
	env := h.env
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: questionnaire.New(env)}
	}
}

func (h *HomeScreen) lastResult() tea.Cmd {
	env := h.env
	return func() tea.Msg {
		_, err := env.Bridge.LoadForDisplay(context.Background())
		if errors.Is(err, results.ErrNoSession) {
			return noResultMsg{}
		}
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return router.PushScreenMsg{Screen: resultsscreen.New(env, false)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume clears notes left over from before the test or results screens
// were opened.
func (h *HomeScreen) Resume() tea.Cmd {
	h.note = ""
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.StartTestMsg:
		h.note = ""
		return h, h.startTest()
	case noResultMsg:
		h.note = "No completed test yet. Start one first."
		return h, nil
	case loadFailedMsg:
		h.note = "Could not load your result: " + msg.err.Error()
		return h, nil
	case tea.KeyMsg:
		h.note = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-8, 60)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("How are you doing, really?"))
	if !layout.CompactBody(height) {
		sections = append(sections, theme.Subtitle.Width(cw).Render(
			"A short self-assessment of mood, sleep, stress and more.\nIt is a reflection aid, not a diagnosis."))
	}
	sections = append(sections, theme.Card.Width(cw).Render(strings.TrimRight(h.menu.View(), "\n")))
	if h.note != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Width(cw).Align(lipgloss.Center).Render(h.note))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
