package analysis

import "github.com/abhisek/mindcheck/internal/llm"

// AnalysisSchema defines the JSON schema for LLM wellbeing analyses.
var AnalysisSchema = &llm.Schema{
	Name:        "wellbeing-analysis",
	Description: "A short supportive commentary on a self-assessment with personalized suggestions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"analysis": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Two or three short paragraphs explaining the result in plain language",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"minItems":    3,
				"maxItems":    5,
				"items":       map[string]any{"type": "string"},
				"description": "Three to five personalized, actionable suggestions",
			},
		},
		"required":             []any{"analysis", "recommendations"},
		"additionalProperties": false,
	},
}
