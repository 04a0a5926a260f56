package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mindcheck/internal/llm"
)

// ErrNoEndpoint is returned when remote mode is selected without a URL.
var ErrNoEndpoint = errors.New("analysis endpoint is not configured")

// Options selects and configures an analysis backend.
type Options struct {
	Mode     string
	Endpoint string

	// Timeout bounds one request for either backend. Zero means no bound
	// beyond the provider's own.
	Timeout  time.Duration
	Provider llm.Provider
}

// New builds the Analyzer for opts.Mode. It returns (nil, nil) for
// BackendOff.
func New(opts Options) (Analyzer, error) {
	switch opts.Mode {
	case BackendRemote:
		if opts.Endpoint == "" {
			return nil, ErrNoEndpoint
		}
		return NewHTTPAnalyzer(opts.Endpoint, opts.Timeout), nil
	case BackendLLM:
		if opts.Provider == nil {
			return nil, fmt.Errorf("analysis mode %q requires an LLM provider", opts.Mode)
		}
		return NewLLMAnalyzer(llm.WithTimeout(opts.Provider, opts.Timeout), DefaultLLMAnalyzerConfig()), nil
	case BackendOff, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown analysis mode: %q", opts.Mode)
	}
}
