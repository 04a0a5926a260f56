package analysis

import (
	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/catalog"
	"github.com/abhisek/mindcheck/internal/scoring"
)

// sampleResult is a finished result with a low sleep answer.
func sampleResult() *scoring.Result {
	return &scoring.Result{
		Answers: []assessment.Answer{
			{QuestionID: 1, Category: catalog.CategoryMood, QuestionText: "How was your mood?", SelectedText: "Good", Value: 4},
			{QuestionID: 2, Category: catalog.CategorySleep, QuestionText: "How did you sleep?", SelectedText: "Very poorly", Value: 1},
		},
		TotalScore:      5,
		MaxScore:        10,
		ScorePercentage: 50,
		DurationSeconds: 30,
		CompletedAt:     "2025-03-01T10:00:30.000Z",
	}
}
