package results

import (
	"context"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/store"
)

// SessionLogger records session start and answer events. Finish events
// are written by Bridge.Finalize, which knows the score.
type SessionLogger struct {
	events store.EventRepo
}

// NewSessionLogger returns an assessment.Observer writing to events.
func NewSessionLogger(events store.EventRepo) *SessionLogger {
	return &SessionLogger{events: events}
}

var _ assessment.Observer = (*SessionLogger)(nil)

func (l *SessionLogger) SessionStarted(s *assessment.Session) {
	_ = l.events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID: s.ID,
		Action:    store.ActionStart,
	})
}

func (l *SessionLogger) AnswerSelected(s *assessment.Session, index int, a assessment.Answer) {
	_ = l.events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:     s.ID,
		Action:        store.ActionAnswer,
		QuestionIndex: index,
		QuestionID:    a.QuestionID,
		Value:         a.Value,
		AnsweredCount: s.AnsweredCount(),
	})
}

func (l *SessionLogger) SessionCompleted(*assessment.Session) {}
