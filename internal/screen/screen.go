// Package screen defines the contract between the router and the screens
// of the assessment TUI.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/ui/layout"
)

// Screen is one page on the router stack. The app frame owns the header
// and footer; a screen only draws the body area it is given.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown in the header while the screen is on top.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints, e.g.
// while a confirmation dialog is open.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
