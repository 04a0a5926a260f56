// Package history lists finished tests from the event log.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/store"
	"github.com/abhisek/mindcheck/internal/ui/layout"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

const historyLimit = 50

type loadedMsg struct {
	finished []store.SessionEventRecord
	analyses map[string]store.AnalysisEventRecord
	err      error
}

var keys = struct {
	Up, Down, Toggle, Back key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Toggle: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Details")),
	Back:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("Esc", "Back")),
}

// Screen shows finished tests newest first. Enter expands a row with its
// duration and the outcome of the analysis request for that session.
type Screen struct {
	events   store.EventRepo
	finished []store.SessionEventRecord
	analyses map[string]store.AnalysisEventRecord

	cursor int
	open   int // expanded row, -1 for none
	offset int // first visible row

	loaded bool
	errMsg string
	now    func() time.Time
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(events store.EventRepo) *Screen {
	return &Screen{events: events, open: -1, now: time.Now}
}

func (s *Screen) Init() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		ctx := context.Background()
		finished, err := events.QuerySessionEvents(ctx, store.ActionFinish, store.QueryOpts{Limit: historyLimit})
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{finished: finished, analyses: latestAnalyses(ctx, events)}
	}
}

// latestAnalyses indexes the newest analysis event per session. A failed
// lookup only hides the analysis column.
func latestAnalyses(ctx context.Context, events store.EventRepo) map[string]store.AnalysisEventRecord {
	out := make(map[string]store.AnalysisEventRecord)
	all, err := events.QueryAnalysisEvents(ctx, store.QueryOpts{})
	if err != nil {
		return out
	}
	for _, a := range all {
		if _, seen := out[a.SessionID]; !seen {
			out[a.SessionID] = a
		}
	}
	return out
}

func (s *Screen) Title() string { return "History" }

func (s *Screen) KeyHints() []layout.KeyHint {
	out := []layout.KeyHint{}
	for _, b := range []key.Binding{keys.Up, keys.Toggle, keys.Back} {
		out = append(out, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return out
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.finished, s.analyses = msg.finished, msg.analyses

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.Up):
			s.cursor = max(s.cursor-1, 0)
		case key.Matches(msg, keys.Down):
			s.cursor = max(min(s.cursor+1, len(s.finished)-1), 0)
		case key.Matches(msg, keys.Toggle):
			if s.open == s.cursor {
				s.open = -1
			} else {
				s.open = s.cursor
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	note := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render("\n\n" + text)
	}
	switch {
	case s.errMsg != "":
		return note(theme.ErrorText, "Could not read history: "+s.errMsg)
	case !s.loaded:
		return note(theme.Hint, "Loading history...")
	case len(s.finished) == 0:
		return note(theme.Hint.Italic(true), "No finished tests yet.")
	}

	// Rows below the fold scroll into view as the cursor moves; the
	// expanded row reserves room for its details.
	visible := max(height-2, 1)
	if s.open >= 0 {
		visible = max(visible-3, 1)
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}
	end := min(s.offset+visible, len(s.finished))

	var b strings.Builder
	b.WriteString("\n")
	for i := s.offset; i < end; i++ {
		b.WriteString(center(width, s.row(i)))
		b.WriteString("\n")
		if i == s.open {
			for _, d := range s.details(s.finished[i]) {
				b.WriteString(center(width, theme.Hint.Render("    "+d)))
				b.WriteString("\n")
			}
		}
	}
	if end < len(s.finished) {
		b.WriteString(center(width, theme.Hint.Render(fmt.Sprintf("%d more", len(s.finished)-end))))
	}
	return b.String()
}

func (s *Screen) row(i int) string {
	rec := s.finished[i]
	marker, style := "  ", theme.Unselected
	if i == s.cursor {
		marker, style = "▸ ", theme.Selected
	}
	when := humanize.RelTime(rec.Timestamp, s.now(), "ago", "from now")
	score := fmt.Sprintf("%2d/%d  %3.0f%%", rec.TotalScore, rec.MaxScore, rec.ScorePercentage)
	band := lipgloss.NewStyle().Foreground(theme.BandColor(rec.Band)).Render(fmt.Sprintf("%-10s", rec.Band))
	return style.Render(fmt.Sprintf("%s%-16s  %s  ", marker, when, score)) + band
}

func (s *Screen) details(rec store.SessionEventRecord) []string {
	took := time.Duration(rec.DurationSecs * float64(time.Second)).Round(time.Second)
	out := []string{
		"Finished " + rec.Timestamp.Local().Format("Jan 02, 2006 15:04"),
		"Took " + took.String(),
	}
	a, ok := s.analyses[rec.SessionID]
	switch {
	case !ok:
		out = append(out, "No analysis requested")
	case a.Success:
		out = append(out, fmt.Sprintf("Analysis by %s in %s ms", a.Backend, humanize.Comma(a.LatencyMs)))
	default:
		out = append(out, fmt.Sprintf("Analysis by %s failed: %s", a.Backend, a.ErrorMessage))
	}
	return out
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
