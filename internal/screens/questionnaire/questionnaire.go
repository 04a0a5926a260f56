// Package questionnaire is the screen that walks the user through the
// question catalog one question at a time.
package questionnaire

import (
	"context"
	"errors"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/screens"
	resultsscreen "github.com/abhisek/mindcheck/internal/screens/results"
	"github.com/abhisek/mindcheck/internal/ui/components"
	"github.com/abhisek/mindcheck/internal/ui/layout"
)

// Screen implements screen.Screen for an in-progress test.
type Screen struct {
	env        *screens.Env
	ctrl       *assessment.Controller
	options    components.OptionList
	keys       keyMap
	confirming bool
	finishing  bool
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New starts a fresh session and returns the screen driving it.
func New(env *screens.Env) *Screen {
	s := &Screen{
		env:  env,
		ctrl: env.NewController(),
		keys: defaultKeyMap(),
	}
	s.syncOptions()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Self-assessment"
}

// Controller exposes the underlying controller.
func (s *Screen) Controller() *assessment.Controller {
	return s.ctrl
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return hints(s.keys.Yes, s.keys.No)
	}
	return hints(s.keys.Up, s.keys.Pick, s.keys.Next, s.keys.Back, s.keys.Abandon)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finishedMsg:
		return s.handleFinished(msg)
	case tea.KeyMsg:
		if s.finishing {
			return s, nil
		}
		if s.confirming {
			return s.handleConfirmKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Abandon):
		s.confirming = true

	case key.Matches(msg, s.keys.Up):
		s.options, _ = s.options.Update(msg)
		s.choose(s.options.Cursor)

	case key.Matches(msg, s.keys.Down):
		s.options, _ = s.options.Update(msg)
		s.choose(s.options.Cursor)

	case key.Matches(msg, s.keys.Pick):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			s.choose(n - 1)
		} else {
			s.choose(s.options.Cursor)
		}

	case key.Matches(msg, s.keys.Next):
		return s.advance()

	case key.Matches(msg, s.keys.Back):
		if s.ctrl.Retreat() {
			s.syncOptions()
		}
	}
	return s, nil
}

func (s *Screen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Yes):
		s.confirming = false
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case key.Matches(msg, s.keys.No):
		s.confirming = false
	}
	return s, nil
}

// choose records option index as the answer. Out-of-range digits are
// ignored.
func (s *Screen) choose(index int) {
	if err := s.ctrl.SelectAnswer(index); err != nil {
		return
	}
	s.options = s.options.Choose(index)
	s.syncKeys()
}

func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	finished, err := s.ctrl.Advance()
	if errors.Is(err, assessment.ErrNotAnswered) {
		return s, nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if !finished {
		s.syncOptions()
		return s, nil
	}

	s.finishing = true
	sess := s.ctrl.Session()
	bridge := s.env.Bridge
	return s, func() tea.Msg {
		result, err := bridge.Finalize(context.Background(), sess)
		return finishedMsg{SessionID: sess.ID, Result: result, Err: err}
	}
}

func (s *Screen) handleFinished(msg finishedMsg) (screen.Screen, tea.Cmd) {
	s.finishing = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	pending := s.env.Bridge.HasAnalyzer()
	next := resultsscreen.New(s.env, pending)
	replace := func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	if !pending {
		return s, replace
	}

	bridge := s.env.Bridge
	analyze := func() tea.Msg {
		bridge.RequestAnalysis(context.Background(), msg.SessionID, msg.Result)
		return resultsscreen.AnalysisDoneMsg{}
	}
	return s, tea.Sequence(replace, analyze)
}

// syncOptions rebuilds the option list for the current question and
// restores any stored answer.
func (s *Screen) syncOptions() {
	q := s.ctrl.Current()
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Text
	}
	chosen, _ := s.ctrl.SelectedOption()
	s.options = components.NewOptionList(labels, chosen)
	s.syncKeys()
}

func (s *Screen) syncKeys() {
	s.keys.Next.SetEnabled(s.ctrl.CanAdvance())
	s.keys.Next.SetHelp("Enter", s.ctrl.AdvanceLabel())
	s.keys.Back.SetEnabled(s.ctrl.CanRetreat())
}
