package llm

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	openRouterReferer = "https://github.com/abhisek/mindcheck"
	openRouterTitle   = "mindcheck"
)

// OpenRouterProvider talks to OpenRouter through its OpenAI-compatible API.
// Model names are OpenRouter IDs such as "anthropic/claude-3-haiku" and are
// never aliased.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting OpenRouter.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	transport := &attributionTransport{base: cleanhttp.DefaultPooledTransport()}
	return &OpenRouterProvider{
		OpenAIProvider: newOpenAICompatible(cfg.APIKey, baseURL, cfg.Model, transport),
	}, nil
}

// attributionTransport adds the app attribution headers OpenRouter uses
// for its rankings.
type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("HTTP-Referer", openRouterReferer)
	r.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(r)
}
