package questionnaire

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/mindcheck/internal/ui/layout"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Next    key.Binding
	Back    key.Binding
	Abandon key.Binding
	Yes     key.Binding
	No      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "space"),
			key.WithHelp("1-5", "Answer"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("Enter", "Next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "backspace", "h"),
			key.WithHelp("←", "Back"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Abandon"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("Y", "Abandon test"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("N", "Keep going"),
		),
	}
}

// hints converts the enabled bindings to footer hints.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() || b.Help().Key == "" {
			continue
		}
		out = append(out, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return out
}
