package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/ui/components"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.confirming {
		return renderAbandonConfirm(width, height)
	}

	cw := min(width-4, 72)
	q := s.ctrl.Current()
	cur, total := s.ctrl.Position()

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", cur, total),
		s.ctrl.Progress(), true, cw)
	b.WriteString(center(width, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(center(width, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(string(q.Category))))
	b.WriteString("\n")
	b.WriteString(center(width, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)))
	b.WriteString("\n\n")

	b.WriteString(center(width, s.options.View()))
	b.WriteString("\n")

	var controls []string
	if s.ctrl.CanRetreat() {
		controls = append(controls, components.NewButton("Back", true).View())
	}
	controls = append(controls, components.NewButton(s.ctrl.AdvanceLabel(), s.ctrl.CanAdvance()).View())
	b.WriteString(center(width, strings.Join(controls, "   ")))

	switch {
	case s.finishing:
		b.WriteString("\n\n")
		b.WriteString(center(width, theme.Hint.Render("Saving your result...")))
	case s.errMsg != "":
		b.WriteString("\n\n")
		b.WriteString(center(width, theme.ErrorText.Render("Error: "+s.errMsg)))
	}

	return b.String()
}

func renderAbandonConfirm(width, height int) string {
	box := theme.Dialog.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Abandon this test?") +
			"\n\n" +
			theme.Hint.Render("Your answers so far will be discarded.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.Accent).Render("[Y] Abandon   [N] Keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
