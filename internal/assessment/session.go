package assessment

import (
	"time"

	"github.com/abhisek/mindcheck/internal/catalog"
)

// Answer records the option chosen for one question. Category and texts are
// copied from the catalog at selection time.
type Answer struct {
	QuestionID   int              `json:"questionId"`
	Category     catalog.Category `json:"category"`
	QuestionText string           `json:"questionText"`
	SelectedText string           `json:"selectedText"`
	Value        int              `json:"value"`
}

// Session is the mutable state of one test attempt. It is owned by a
// Controller; read it through the Controller's accessors.
type Session struct {
	// ID identifies the attempt in the event log.
	ID string

	// Questions is a snapshot of the catalog taken at start.
	Questions []catalog.Question

	// CurrentIndex is the position of the displayed question, in [0, N-1].
	CurrentIndex int

	// Answers maps a question index to its answer. Gaps are allowed.
	Answers map[int]Answer

	// StartTime is when the attempt began.
	StartTime time.Time

	// Completed is set once the last question has been advanced past.
	Completed bool
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.Questions)
}

// OrderedAnswers returns the present answers in question order.
func (s *Session) OrderedAnswers() []Answer {
	out := make([]Answer, 0, len(s.Answers))
	for i := range s.Questions {
		if a, ok := s.Answers[i]; ok {
			out = append(out, a)
		}
	}
	return out
}

// AnsweredCount returns the number of questions with an answer.
func (s *Session) AnsweredCount() int {
	return len(s.Answers)
}
