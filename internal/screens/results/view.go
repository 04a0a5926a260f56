package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/ui/layout"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.confirming {
		return renderRestartConfirm(width, height)
	}
	if s.errMsg != "" && s.display == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.display == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading result...")
	}

	d := s.display
	cw := min(width-6, 72)
	compact := layout.CompactBody(height)
	bandColor := theme.BandColor(d.Interpretation.Band.String())

	var b strings.Builder
	b.WriteString("\n")

	score := fmt.Sprintf("%d / %d   (%d%%)", d.Result.TotalScore, d.Result.MaxScore, d.Result.RoundedPercentage())
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(score)))
	b.WriteString("\n")
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(bandColor).Bold(true).Render(d.Interpretation.Title)))
	b.WriteString("\n\n")
	b.WriteString(center(width, lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(d.Interpretation.Description)))
	b.WriteString("\n\n")

	b.WriteString(section(width, cw, "Recommendations"))
	for _, r := range d.Recommend {
		b.WriteString(center(width, lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render("• "+r)))
		b.WriteString("\n")
	}

	if text, ok := d.Analysis.Commentary(); ok {
		b.WriteString("\n")
		b.WriteString(section(width, cw, "AI analysis"))
		b.WriteString(center(width, lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(text)))
		b.WriteString("\n")
		for _, r := range d.Analysis.Recommendations {
			b.WriteString(center(width, lipgloss.NewStyle().Width(cw).Foreground(theme.Secondary).Render("• "+r)))
			b.WriteString("\n")
		}
		if d.Analysis.ProfessionalHelpNeeded {
			b.WriteString(center(width, lipgloss.NewStyle().Width(cw).Foreground(theme.Accent).
				Render("Talking to a mental health professional is recommended.")))
			b.WriteString("\n")
		}
		if !compact && d.Analysis.RiskLevel != "" {
			b.WriteString(center(width, theme.Hint.Width(cw).Render("Risk level: "+d.Analysis.RiskLevel)))
			b.WriteString("\n")
		}
	} else if s.pending {
		b.WriteString("\n")
		b.WriteString(center(width, theme.Hint.Render("Analysis in progress...")))
		b.WriteString("\n")
	}

	if !compact {
		b.WriteString("\n")
		b.WriteString(center(width, theme.Hint.Width(cw).Render(
			"This self-assessment is not a diagnosis. If you are struggling, please reach out to a mental health professional.")))
		b.WriteString("\n")
	}

	switch {
	case s.errMsg != "":
		b.WriteString("\n")
		b.WriteString(center(width, theme.ErrorText.Render("Error: "+s.errMsg)))
	case s.status != "":
		b.WriteString("\n")
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Success).Render(s.status)))
	}

	return b.String()
}

func section(width, cw int, title string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	return center(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) + "\n" +
		center(width, divider) + "\n"
}

func renderRestartConfirm(width, height int) string {
	box := theme.Dialog.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Start a new test?") +
			"\n\n" +
			theme.Hint.Render("Your stored result and analysis will be deleted.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.Accent).Render("[Y] Start over   [N] Cancel"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
