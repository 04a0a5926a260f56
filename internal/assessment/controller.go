package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindcheck/internal/catalog"
)

// Advance button labels.
const (
	LabelNext   = "Next question"
	LabelFinish = "Finish test"
)

// Observer is notified of session milestones. Implementations must not
// mutate the session.
type Observer interface {
	SessionStarted(s *Session)
	AnswerSelected(s *Session, index int, a Answer)
	SessionCompleted(s *Session)
}

// Controller drives a Session through the catalog: it records answers,
// moves the current position and decides when the test is complete.
// It is not safe for concurrent use.
type Controller struct {
	catalog  *catalog.Catalog
	session  *Session
	now      func() time.Time
	observer Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithObserver attaches an observer for session milestones.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// NewController creates a controller and starts a session over cat.
func NewController(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{catalog: cat, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	c.Initialize()
	return c
}

// Initialize discards any current state and starts a fresh session.
func (c *Controller) Initialize() {
	c.session = &Session{
		ID:        uuid.New().String(),
		Questions: c.catalog.Questions(),
		Answers:   make(map[int]Answer),
		StartTime: c.now(),
	}
	if c.observer != nil {
		c.observer.SessionStarted(c.session)
	}
}

// Session returns the session handle. Callers must treat it as read-only.
func (c *Controller) Session() *Session {
	return c.session
}

// Current returns the question at the current position.
func (c *Controller) Current() catalog.Question {
	return c.session.Questions[c.session.CurrentIndex]
}

// SelectAnswer records the option at optionIndex for the current question,
// replacing any earlier choice.
func (c *Controller) SelectAnswer(optionIndex int) error {
	s := c.session
	if s.Completed {
		return ErrSessionComplete
	}
	q := s.Questions[s.CurrentIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOptionOutOfRange, optionIndex, len(q.Options))
	}

	opt := q.Options[optionIndex]
	a := Answer{
		QuestionID:   q.ID,
		Category:     q.Category,
		QuestionText: q.Prompt,
		SelectedText: opt.Text,
		Value:        opt.Value,
	}
	s.Answers[s.CurrentIndex] = a

	if c.observer != nil {
		c.observer.AnswerSelected(s, s.CurrentIndex, a)
	}
	return nil
}

// Advance moves to the next question. On the last question it completes the
// session instead and reports finished = true.
func (c *Controller) Advance() (finished bool, err error) {
	s := c.session
	if s.Completed {
		return false, ErrSessionComplete
	}
	if _, ok := s.Answers[s.CurrentIndex]; !ok {
		return false, ErrNotAnswered
	}

	if c.IsLast() {
		s.Completed = true
		if c.observer != nil {
			c.observer.SessionCompleted(s)
		}
		return true, nil
	}

	s.CurrentIndex++
	return false, nil
}

// Retreat moves back one question. Returns false at the first question.
func (c *Controller) Retreat() bool {
	s := c.session
	if s.Completed || s.CurrentIndex == 0 {
		return false
	}
	s.CurrentIndex--
	return true
}

// SelectedOption returns the option index of the stored answer for the
// current question. The lookup matches by value, taking the first match.
func (c *Controller) SelectedOption() (int, bool) {
	a, ok := c.session.Answers[c.session.CurrentIndex]
	if !ok {
		return -1, false
	}
	idx := c.Current().OptionIndexForValue(a.Value)
	return idx, idx >= 0
}

// Progress returns (CurrentIndex+1)/N.
func (c *Controller) Progress() float64 {
	return float64(c.session.CurrentIndex+1) / float64(c.session.Len())
}

// Position returns the 1-based current position and the total.
func (c *Controller) Position() (current, total int) {
	return c.session.CurrentIndex + 1, c.session.Len()
}

// IsLast reports whether the current question is the final one.
func (c *Controller) IsLast() bool {
	return c.session.CurrentIndex == c.session.Len()-1
}

// CanRetreat reports whether Retreat would move.
func (c *Controller) CanRetreat() bool {
	return !c.session.Completed && c.session.CurrentIndex > 0
}

// CanAdvance reports whether the current question has an answer.
func (c *Controller) CanAdvance() bool {
	if c.session.Completed {
		return false
	}
	_, ok := c.session.Answers[c.session.CurrentIndex]
	return ok
}

// AdvanceLabel returns the label for the advance control.
func (c *Controller) AdvanceLabel() string {
	if c.IsLast() {
		return LabelFinish
	}
	return LabelNext
}
