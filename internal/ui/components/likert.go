package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/ui/theme"
)

// OptionList is a single-choice selector for answer options. Cursor is the
// highlighted row; Chosen is the option recorded as the answer (-1 for none).
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewOptionList creates a selector. When chosen is a valid index the cursor
// starts on it.
func NewOptionList(options []string, chosen int) OptionList {
	l := OptionList{Options: options, Chosen: -1}
	if chosen >= 0 && chosen < len(options) {
		l.Chosen = chosen
		l.Cursor = chosen
	}
	return l
}

// Update moves the cursor. Selection itself is left to the owning screen so
// that it can record the answer before the list reflects it.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	}
	return l, nil
}

// Choose marks index as the recorded answer and moves the cursor to it.
func (l OptionList) Choose(index int) OptionList {
	if index >= 0 && index < len(l.Options) {
		l.Chosen = index
		l.Cursor = index
	}
	return l
}

// View renders the option list.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		mark := "( )"
		if i == l.Chosen {
			mark = "(•)"
		}
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d %s %s", prefix, i+1, mark, opt)

		switch {
		case i == l.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == l.Chosen:
			b.WriteString(theme.Body.Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
