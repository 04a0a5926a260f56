package analysis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindcheck/internal/llm"
)

func TestLLMAnalyzer_Success(t *testing.T) {
	resp := json.RawMessage(`{"analysis":"Your sleep answers stand out.","recommendations":["Go to bed at a fixed time","Limit screens at night","Take short walks"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewLLMAnalyzer(mock, DefaultLLMAnalyzerConfig())

	res, err := a.Analyze(context.Background(), sampleResult())
	require.NoError(t, err)

	text, ok := res.Commentary()
	require.True(t, ok)
	assert.Equal(t, "Your sleep answers stand out.", text)
	assert.Len(t, res.Recommendations, 3)
	assert.Equal(t, RiskMedium, res.RiskLevel)
	assert.False(t, res.ProfessionalHelpNeeded)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, AnalysisSchema, call.Schema)
	assert.Equal(t, analysisSystemPrompt, call.System)
	require.Len(t, call.Messages, 1)

	msg := call.Messages[0].Content
	for _, want := range []string{"Score: 5/10 (50%)", "Band: Moderate", "Risk level: medium", "[Sleep] How did you sleep?", `"Very poorly" (1/5)`} {
		assert.True(t, strings.Contains(msg, want), "prompt missing %q:\n%s", want, msg)
	}
}

func TestLLMAnalyzer_HighRiskNeedsHelp(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"analysis":"Please reach out.","recommendations":[]}`)})
	a := NewLLMAnalyzer(mock, DefaultLLMAnalyzerConfig())

	r := sampleResult()
	r.ScorePercentage = 10
	res, err := a.Analyze(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, RiskVeryHigh, res.RiskLevel)
	assert.True(t, res.ProfessionalHelpNeeded)
}

func TestLLMAnalyzer_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewLLMAnalyzer(mock, DefaultLLMAnalyzerConfig())

	_, err := a.Analyze(context.Background(), sampleResult())
	require.Error(t, err)

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestLLMAnalyzer_BadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	a := NewLLMAnalyzer(mock, DefaultLLMAnalyzerConfig())

	_, err := a.Analyze(context.Background(), sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse analysis response")
}
