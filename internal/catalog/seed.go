package catalog

import "fmt"

func init() {
	c, err := New(seedQuestions())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	def = c
}

// likert builds the five options of a question, most favorable first.
func likert(texts ...string) []Option {
	opts := make([]Option, len(texts))
	for i, t := range texts {
		opts[i] = Option{Text: t, Value: MaxValue - i}
	}
	return opts
}

func seedQuestions() []Question {
	return []Question{
		{
			ID:       1,
			Category: CategoryMood,
			Prompt:   "How have you been feeling over the last two weeks?",
			Options:  likert("Very good and energetic", "Mostly good", "Neutral or undecided", "A bit down", "Very bad and hopeless"),
		},
		{
			ID:       2,
			Category: CategorySleep,
			Prompt:   "How is the quality of your sleep?",
			Options:  likert("Very good, restful", "Usually good", "Sometimes good, sometimes bad", "Usually poor", "Very poor, insomnia"),
		},
		{
			ID:       3,
			Category: CategoryAnxiety,
			Prompt:   "How often do you feel worried or anxious?",
			Options:  likert("Never", "Rarely", "Sometimes", "Often", "All the time"),
		},
		{
			ID:       4,
			Category: CategorySocial,
			Prompt:   "How willing are you to take part in social activities?",
			Options:  likert("Very willing", "Usually willing", "Sometimes willing", "Usually unwilling", "Not at all"),
		},
		{
			ID:       5,
			Category: CategoryConcentration,
			Prompt:   "How is your ability to concentrate?",
			Options:  likert("Very good", "Usually good", "Average", "Weak", "Very weak"),
		},
		{
			ID:       6,
			Category: CategoryEnergy,
			Prompt:   "How is your energy level?",
			Options:  likert("Very high", "High", "Normal", "Low", "Very low"),
		},
		{
			ID:       7,
			Category: CategoryStress,
			Prompt:   "How would you rate your stress level?",
			Options:  likert("Very low", "Low", "Moderate", "High", "Very high"),
		},
		{
			ID:       8,
			Category: CategoryRelationships,
			Prompt:   "How satisfied are you with your relationships?",
			Options:  likert("Very satisfied", "Satisfied", "Somewhat", "Not satisfied", "Not satisfied at all"),
		},
		{
			ID:       9,
			Category: CategorySelfEsteem,
			Prompt:   "How do you see yourself?",
			Options:  likert("Very positively", "Positively", "Neutral", "Negatively", "Very negatively"),
		},
		{
			ID:       10,
			Category: CategoryFuture,
			Prompt:   "How do you feel about the future?",
			Options:  likert("Very optimistic", "Optimistic", "Undecided", "Pessimistic", "Very pessimistic"),
		},
	}
}
