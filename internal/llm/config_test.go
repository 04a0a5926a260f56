package llm

import (
	"testing"
	"time"
)

// clearLLMEnv blanks every variable the config readers consult.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, o := range envOverrides(&Config{}) {
		t.Setenv(o.name, "")
	}
	for _, k := range []string{"MINDCHECK_LLM_TIMEOUT", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("MINDCHECK_LLM_PROVIDER", "openai")
	t.Setenv("MINDCHECK_OPENAI_API_KEY", "sk-test")
	t.Setenv("MINDCHECK_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("MINDCHECK_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("gemini default model lost: %q", cfg.Gemini.Model)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearLLMEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a config")
	}
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o-key" {
		t.Errorf("discovered %q with key %q, want openai first", cfg.Provider, cfg.OpenAI.APIKey)
	}
}

func TestResolveConfig(t *testing.T) {
	clearLLMEnv(t)
	if _, err := ResolveConfig(); err == nil {
		t.Fatal("expected error without any key")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("MINDCHECK_LLM_TIMEOUT", "2s")
	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Provider != ProviderGemini || cfg.Timeout != 2*time.Second {
		t.Errorf("resolved %+v", cfg)
	}

	t.Setenv("MINDCHECK_LLM_PROVIDER", "mock")
	cfg, err = ResolveConfig()
	if err != nil {
		t.Fatalf("resolve mock: %v", err)
	}
	if cfg.Provider != ProviderMock {
		t.Errorf("explicit provider ignored: %q", cfg.Provider)
	}
}

func TestConfig_HasKey(t *testing.T) {
	if (Config{Provider: ProviderMock}).HasKey() {
		t.Error("mock should not count as a configured key")
	}
	if !(Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}).HasKey() {
		t.Error("gemini with key should count")
	}
}
