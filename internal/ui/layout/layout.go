// Package layout draws the app frame: a header bar, the active screen's
// body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	// Header and footer are one line of text inside a rounded border.
	HeaderHeight = 3
	FooterHeight = 3

	// Terminals shorter than this drop secondary text such as the
	// disclaimer and risk level.
	CompactHeightThreshold = 28
)

type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// CompactBody reports whether a screen body of bodyHeight lines belongs to
// a compact terminal.
func CompactBody(bodyHeight int) bool {
	return bodyHeight+HeaderHeight+FooterHeight < CompactHeightThreshold
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Please make the terminal at least %d×%d.\n\nIt is %d×%d now.",
			MinWidth, MinHeight, width, height))
}

// RenderHeader shows the app name on the left, the screen title in the
// middle and status (for example the analysis backend) on the right.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("mindcheck")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(status)

	inner := max(width-6, 0)
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)
	gapL := max((inner-mw)/2-lw, 1)
	gapR := max(inner-lw-gapL-mw-rw, 1)

	return bar(width, left+strings.Repeat(" ", gapL)+mid+strings.Repeat(" ", gapR)+right)
}

func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar(width, strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer, padding the body so the
// footer stays on the last lines.
func RenderFrame(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}
