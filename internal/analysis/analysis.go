// Package analysis obtains free-text commentary on a finished test from an
// external backend: either a remote HTTP service or an LLM provider.
package analysis

import (
	"context"

	"github.com/abhisek/mindcheck/internal/scoring"
)

// Backend names, also used as analysis.mode config values.
const (
	BackendRemote = "remote"
	BackendLLM    = "llm"
	BackendOff    = "off"
)

// Result is the commentary returned for a test result. Every field is
// optional; a result with no AIAnalysis renders no commentary section.
type Result struct {
	AIAnalysis             *string  `json:"ai_analysis,omitempty"`
	Recommendations        []string `json:"recommendations,omitempty"`
	RiskLevel              string   `json:"risk_level,omitempty"`
	ProfessionalHelpNeeded bool     `json:"professional_help_needed,omitempty"`
}

// Commentary returns the analysis text and whether it is present and
// non-empty.
func (r *Result) Commentary() (string, bool) {
	if r == nil || r.AIAnalysis == nil || *r.AIAnalysis == "" {
		return "", false
	}
	return *r.AIAnalysis, true
}

// Analyzer produces commentary for a result. Implementations make one
// attempt per call.
type Analyzer interface {
	Analyze(ctx context.Context, result *scoring.Result) (*Result, error)

	// Name identifies the backend in the event log.
	Name() string
}
