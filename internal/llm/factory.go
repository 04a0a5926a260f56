package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/mindcheck/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped as
// caller → timeout → logging → base. Requests are never retried: a
// failed analysis is recorded and the user simply sees no commentary.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo != nil {
		base = WithLogging(base, eventRepo)
	}
	return WithTimeout(base, cfg.Timeout), nil
}

// ResolveConfig picks the explicit MINDCHECK_* configuration when it
// validates, otherwise the first standard API key found in the environment.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	discovered, ok := DiscoverConfig()
	if !ok {
		return Config{}, err
	}
	discovered.Timeout = cfg.Timeout
	return discovered, nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the provider.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}
