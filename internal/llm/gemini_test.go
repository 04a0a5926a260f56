package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.5-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-2.0-flash", geminiModels))
}

func TestBuildGeminiSchema_AnalysisShape(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"analysis": map[string]any{"type": "string", "minLength": 1, "description": "commentary"},
			"recommendations": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 5,
				"items":    map[string]any{"type": "string"},
			},
			"risk_level": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
		},
		"required":             []any{"analysis", "recommendations"},
		"additionalProperties": false,
	}

	s := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"analysis", "recommendations"}, s.Required)
	require.Len(t, s.Properties, 3)

	analysis := s.Properties["analysis"]
	assert.Equal(t, genai.TypeString, analysis.Type)
	assert.Equal(t, "commentary", analysis.Description)
	require.NotNil(t, analysis.MinLength)
	assert.EqualValues(t, 1, *analysis.MinLength)

	recs := s.Properties["recommendations"]
	assert.Equal(t, genai.TypeArray, recs.Type)
	require.NotNil(t, recs.Items)
	assert.Equal(t, genai.TypeString, recs.Items.Type)
	require.NotNil(t, recs.MinItems)
	require.NotNil(t, recs.MaxItems)
	assert.EqualValues(t, 3, *recs.MinItems)
	assert.EqualValues(t, 5, *recs.MaxItems)

	assert.Equal(t, []string{"low", "medium", "high"}, s.Properties["risk_level"].Enum)
}

func TestBuildGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	s := buildGeminiSchema(map[string]any{"type": "null"})
	assert.Equal(t, genai.TypeString, s.Type)
	assert.Nil(t, s.MinLength)
}

func TestMapGeminiStopReason(t *testing.T) {
	truncated := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonMaxTokens}}}
	done := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}}}

	assert.Equal(t, StopMaxTokens, mapGeminiStopReason(truncated))
	assert.Equal(t, StopEnd, mapGeminiStopReason(done))
	assert.Equal(t, StopEnd, mapGeminiStopReason(&genai.GenerateContentResponse{}))
}
