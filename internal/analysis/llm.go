package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/scoring"
)

// LLMAnalyzerConfig holds configuration for the LLM analyzer.
type LLMAnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMAnalyzerConfig returns sensible defaults.
func DefaultLLMAnalyzerConfig() LLMAnalyzerConfig {
	return LLMAnalyzerConfig{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// LLMAnalyzer asks an LLM provider for commentary. The risk level and the
// professional-help flag are derived from the score band, not the model.
type LLMAnalyzer struct {
	provider llm.Provider
	cfg      LLMAnalyzerConfig
}

// NewLLMAnalyzer creates an analyzer backed by provider.
func NewLLMAnalyzer(provider llm.Provider, cfg LLMAnalyzerConfig) *LLMAnalyzer {
	return &LLMAnalyzer{provider: provider, cfg: cfg}
}

func (a *LLMAnalyzer) Name() string {
	return BackendLLM
}

// analysisOutput is the raw LLM response.
type analysisOutput struct {
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

func (a *LLMAnalyzer) Analyze(ctx context.Context, result *scoring.Result) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "analysis")

	band := result.Band()
	risk := RiskFor(band)

	userMsg, err := buildAnalysisMessage(result, risk)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM analysis failed: %w", err)
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	return &Result{
		AIAnalysis:             &raw.Analysis,
		Recommendations:        raw.Recommendations,
		RiskLevel:              risk,
		ProfessionalHelpNeeded: NeedsProfessionalHelp(risk),
	}, nil
}

const analysisSystemPrompt = `You are a supportive mental wellbeing assistant. A person has completed a short self-assessment where every answer is scored from 1 (least favorable) to 5 (most favorable).

Instructions:
- Explain the overall result in simple, warm language.
- Comment on the risk level you are given; do not change it.
- Point out the two or three areas with the lowest answers.
- Give three to five personalized, practical suggestions.
- If the risk level is high or very high, clearly recommend contacting a mental health professional.
- Do not diagnose. Use a hopeful, encouraging tone.`

type promptData struct {
	Percentage int
	Total      int
	Max        int
	Band       string
	Risk       string
	Answers    []answerLine
}

type answerLine struct {
	Category string
	Question string
	Answer   string
	Value    int
}

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Score: {{.Total}}/{{.Max}} ({{.Percentage}}%)
Band: {{.Band}}
Risk level: {{.Risk}}

Answers:
{{range .Answers}}- [{{.Category}}] {{.Question}} -> "{{.Answer}}" ({{.Value}}/5)
{{end}}`))

func buildAnalysisMessage(result *scoring.Result, risk string) (string, error) {
	data := promptData{
		Percentage: result.RoundedPercentage(),
		Total:      result.TotalScore,
		Max:        result.MaxScore,
		Band:       result.Band().String(),
		Risk:       risk,
	}
	for _, a := range result.Answers {
		data.Answers = append(data.Answers, answerLine{
			Category: string(a.Category),
			Question: a.QuestionText,
			Answer:   a.SelectedText,
			Value:    a.Value,
		})
	}

	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
