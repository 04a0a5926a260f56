package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by MINDCHECK_LLM_PROVIDER.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single request. Zero disables the bound.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with Gemini selected, the backend the
// analysis service was first written against.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Timeout:    30 * time.Second,
	}
}

// envOverrides maps MINDCHECK_* variables onto config fields.
func envOverrides(cfg *Config) []struct {
	name  string
	field *string
} {
	return []struct {
		name  string
		field *string
	}{
		{"MINDCHECK_LLM_PROVIDER", &cfg.Provider},
		{"MINDCHECK_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"MINDCHECK_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"MINDCHECK_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"MINDCHECK_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"MINDCHECK_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"MINDCHECK_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"MINDCHECK_GEMINI_MODEL", &cfg.Gemini.Model},
		{"MINDCHECK_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"MINDCHECK_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
	}
}

// ConfigFromEnv builds a Config from MINDCHECK_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for _, o := range envOverrides(&cfg) {
		if v := os.Getenv(o.name); v != "" {
			*o.field = v
		}
	}
	if d, err := time.ParseDuration(os.Getenv("MINDCHECK_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	missing := func(env string) error {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}

	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing("MINDCHECK_ANTHROPIC_API_KEY")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing("MINDCHECK_OPENAI_API_KEY")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing("MINDCHECK_GEMINI_API_KEY")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing("MINDCHECK_OPENROUTER_API_KEY")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// HasKey reports whether any provider credential is configured.
func (c Config) HasKey() bool {
	return c.Validate() == nil && c.Provider != ProviderMock
}
