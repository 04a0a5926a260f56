package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every source at an empty temp dir.
func isolate(t *testing.T) LoadOptions {
	t.Helper()
	dir := t.TempDir()
	for _, k := range []string{"MINDCHECK_DB", "MINDCHECK_ANALYSIS_MODE", "MINDCHECK_ANALYSIS_ENDPOINT", "MINDCHECK_ANALYSIS_TIMEOUT", "MINDCHECK_SHARE_URL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return LoadOptions{ConfigDir: dir, EnvFile: filepath.Join(dir, ".env")}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(isolate(t))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, ModeAuto, cfg.Analysis.Mode)
	assert.Equal(t, DefaultAnalysisTimeout, cfg.Analysis.Timeout)
	assert.Equal(t, "", cfg.Share.URL)
}

func TestLoad_ConfigFile(t *testing.T) {
	opts := isolate(t)
	writeFile(t, filepath.Join(opts.ConfigDir, "config.yaml"), `
db: /tmp/mc.db
analysis:
  mode: remote
  endpoint: http://localhost:8000/api/analyze-test
  timeout: 5s
share:
  url: https://example.com/test
`)

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mc.db", cfg.DB)
	assert.Equal(t, ModeRemote, cfg.Analysis.Mode)
	assert.Equal(t, "http://localhost:8000/api/analyze-test", cfg.Analysis.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, "https://example.com/test", cfg.Share.URL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	opts := isolate(t)
	writeFile(t, filepath.Join(opts.ConfigDir, "config.yaml"), "analysis:\n  mode: remote\n  endpoint: http://a.example/x\n")
	t.Setenv("MINDCHECK_ANALYSIS_MODE", "off")

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, ModeOff, cfg.Analysis.Mode)
}

func TestLoad_DotEnv(t *testing.T) {
	opts := isolate(t)
	writeFile(t, opts.EnvFile, "MINDCHECK_SHARE_URL=https://dotenv.example/\n")
	t.Cleanup(func() { os.Unsetenv("MINDCHECK_SHARE_URL") })

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.example/", cfg.Share.URL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown mode", "analysis:\n  mode: telepathy\n"},
		{"bad endpoint", "analysis:\n  mode: remote\n  endpoint: not a url\n"},
		{"remote without endpoint", "analysis:\n  mode: remote\n"},
		{"negative timeout", "analysis:\n  timeout: -1s\n"},
		{"bad share url", "share:\n  url: '::'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolate(t)
			writeFile(t, filepath.Join(opts.ConfigDir, "config.yaml"), tt.yaml)
			_, err := Load(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		llm      bool
		wantMode string
	}{
		{"explicit wins", Config{Analysis: AnalysisConfig{Mode: ModeOff, Endpoint: "http://x"}}, true, ModeOff},
		{"endpoint first", Config{Analysis: AnalysisConfig{Endpoint: "http://x"}}, true, ModeRemote},
		{"llm next", Config{}, true, ModeLLM},
		{"nothing", Config{}, false, ModeOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMode, tt.cfg.ResolveMode(tt.llm))
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "mindcheck"), dir)
}
