package questionnaire

import (
	"github.com/abhisek/mindcheck/internal/scoring"
)

// finishedMsg is sent once the completed session has been stored.
type finishedMsg struct {
	SessionID string
	Result    *scoring.Result
	Err       error
}
