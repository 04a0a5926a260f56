package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/mindcheck/internal/analysis"
	"github.com/abhisek/mindcheck/internal/config"
	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/results"
	"github.com/abhisek/mindcheck/internal/store"
)

// buildAnalyzer selects the analysis backend from config. It returns the
// effective mode alongside; a nil Analyzer means analysis is off.
func buildAnalyzer(ctx context.Context, events store.EventRepo) (analysis.Analyzer, string, error) {
	provider, perr := llm.NewProviderFromEnv(ctx, events)
	mode := cfg.ResolveMode(perr == nil)

	if mode == config.ModeLLM && perr != nil {
		return nil, mode, fmt.Errorf("analysis mode llm: %w", perr)
	}

	a, err := analysis.New(analysis.Options{
		Mode:     mode,
		Endpoint: cfg.Analysis.Endpoint,
		Timeout:  cfg.Analysis.Timeout,
		Provider: provider,
	})
	if err != nil {
		return nil, mode, err
	}
	return a, mode, nil
}

// newBridge builds a results bridge over st. withAnalysis controls
// whether an analyzer is wired in.
func newBridge(ctx context.Context, st *store.Store, withAnalysis bool) (*results.Bridge, string, error) {
	opts := []results.Option{results.WithEventRepo(st.EventRepo())}
	mode := config.ModeOff
	if withAnalysis {
		a, m, err := buildAnalyzer(ctx, st.EventRepo())
		if err != nil {
			return nil, m, err
		}
		mode = m
		if a != nil {
			opts = append(opts, results.WithAnalyzer(a))
		}
	}
	return results.NewBridge(st.KV(), opts...), mode, nil
}
