// Package results is the screen showing the stored result, its
// interpretation and any analysis commentary.
package results

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	res "github.com/abhisek/mindcheck/internal/results"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/screens"
	"github.com/abhisek/mindcheck/internal/share"
	"github.com/abhisek/mindcheck/internal/ui/layout"
)

// AnalysisDoneMsg is sent when a requested analysis has finished, whether
// or not it succeeded. The screen re-reads storage on receipt.
type AnalysisDoneMsg struct{}

type loadedMsg struct {
	gen     int
	display *res.Display
	err     error
}

type restartedMsg struct {
	err error
}

type sharedMsg struct {
	channel share.Channel
	err     error
}

// Screen implements screen.Screen for the results view.
type Screen struct {
	env        *screens.Env
	display    *res.Display
	pending    bool
	loaded     bool
	confirming bool
	gen        int
	status     string
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the results screen. pending marks an analysis as in flight;
// it clears on AnalysisDoneMsg.
func New(env *screens.Env, pending bool) *Screen {
	return &Screen{env: env, pending: pending}
}

func (s *Screen) Init() tea.Cmd {
	return s.load()
}

func (s *Screen) Title() string {
	return "Your Result"
}

// Display returns the loaded display data, or nil before loading.
func (s *Screen) Display() *res.Display {
	return s.display
}

// Pending reports whether an analysis is still in flight.
func (s *Screen) Pending() bool {
	return s.pending
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Start over"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Restart"},
		{Key: "S", Description: "Share"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		// A reload may overtake an earlier one; keep the newest.
		if msg.gen != s.gen {
			return s, nil
		}
		s.loaded = true
		if errors.Is(msg.err, res.ErrNoSession) {
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.display = msg.display
		return s, nil

	case AnalysisDoneMsg:
		s.pending = false
		return s, s.load()

	case restartedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, tea.Sequence(
			func() tea.Msg { return router.PopToRootMsg{} },
			func() tea.Msg { return screens.StartTestMsg{} },
		)

	case sharedMsg:
		s.status = shareStatus(msg)
		return s, nil

	case tea.KeyMsg:
		if s.confirming {
			return s.handleConfirmKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		s.confirming = true
	case "s", "S":
		if s.display == nil {
			return s, nil
		}
		return s, s.share()
	}
	return s, nil
}

func (s *Screen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.confirming = false
		bridge := s.env.Bridge
		return s, func() tea.Msg {
			return restartedMsg{err: bridge.Restart(context.Background())}
		}
	case "n", "N", "esc":
		s.confirming = false
	}
	return s, nil
}

func (s *Screen) load() tea.Cmd {
	s.gen++
	gen := s.gen
	bridge := s.env.Bridge
	return func() tea.Msg {
		d, err := bridge.LoadForDisplay(context.Background())
		return loadedMsg{gen: gen, display: d, err: err}
	}
}

func (s *Screen) share() tea.Cmd {
	text := share.Summary(s.display.Result, s.env.ShareURL)
	svc := s.env.Share
	return func() tea.Msg {
		ch, err := svc.Share(context.Background(), text)
		return sharedMsg{channel: ch, err: err}
	}
}

func shareStatus(msg sharedMsg) string {
	switch {
	case msg.err != nil:
		return "Could not share: " + msg.err.Error()
	case msg.channel == share.ChannelClipboard:
		return "Result copied to clipboard."
	default:
		return "Result shared."
	}
}
