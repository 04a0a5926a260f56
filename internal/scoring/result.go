package scoring

import (
	"time"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/catalog"
)

// CompletedAtLayout is the timestamp format of Result.CompletedAt.
const CompletedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Result is the finalized outcome of a completed session.
type Result struct {
	Answers         []assessment.Answer `json:"answers"`
	TotalScore      int                 `json:"totalScore"`
	MaxScore        int                 `json:"maxScore"`
	ScorePercentage float64             `json:"scorePercentage"`
	DurationSeconds float64             `json:"durationSeconds"`
	CompletedAt     string              `json:"completedAt"`
}

// ComputeResult reduces a session to its Result. It depends only on the
// session's answers, its start time and completedAt.
func ComputeResult(s *assessment.Session, completedAt time.Time) *Result {
	answers := s.OrderedAnswers()

	total := 0
	for _, a := range answers {
		total += a.Value
	}

	maxScore := s.Len() * catalog.MaxValue

	var pct float64
	if maxScore > 0 {
		pct = float64(total) * 100 / float64(maxScore)
	}

	return &Result{
		Answers:         answers,
		TotalScore:      total,
		MaxScore:        maxScore,
		ScorePercentage: pct,
		DurationSeconds: completedAt.Sub(s.StartTime).Seconds(),
		CompletedAt:     completedAt.UTC().Format(CompletedAtLayout),
	}
}

// Band returns the interpretation band of the result.
func (r *Result) Band() Band {
	return BandFor(r.ScorePercentage)
}

// RoundedPercentage returns the percentage rounded to the nearest integer.
func (r *Result) RoundedPercentage() int {
	return int(r.ScorePercentage + 0.5)
}
