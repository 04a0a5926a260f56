// Package config loads user settings from config.yaml, a .env file and
// MINDCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. MINDCHECK_ANALYSIS_MODE.
const EnvPrefix = "MINDCHECK"

// Analysis modes. ModeAuto picks one from what is configured.
const (
	ModeAuto   = ""
	ModeRemote = "remote"
	ModeLLM    = "llm"
	ModeOff    = "off"
)

// DefaultAnalysisTimeout bounds one analysis request.
const DefaultAnalysisTimeout = 30 * time.Second

// Config holds user settings.
type Config struct {
	// DB overrides the database path. Empty selects the XDG default.
	DB string `mapstructure:"db"`

	Analysis AnalysisConfig `mapstructure:"analysis"`
	Share    ShareConfig    `mapstructure:"share"`
}

// AnalysisConfig selects the commentary backend.
type AnalysisConfig struct {
	Mode     string        `mapstructure:"mode" validate:"omitempty,oneof=remote llm off"`
	Endpoint string        `mapstructure:"endpoint" validate:"omitempty,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// ShareConfig customizes the share summary.
type ShareConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// LoadOptions locate the optional config sources.
type LoadOptions struct {
	// ConfigDir holds config.yaml. Empty selects DefaultConfigDir().
	ConfigDir string

	// EnvFile is loaded into the process environment without overriding
	// variables that are already set. Empty selects ".env".
	EnvFile string
}

var validate = validator.New()

// Load reads settings in increasing priority: defaults, config.yaml,
// environment (including the .env file).
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = DefaultConfigDir(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", "")
	v.SetDefault("analysis.mode", ModeAuto)
	v.SetDefault("analysis.endpoint", "")
	v.SetDefault("analysis.timeout", DefaultAnalysisTimeout)
	v.SetDefault("share.url", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Analysis.Mode = strings.ToLower(strings.TrimSpace(cfg.Analysis.Mode))

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Analysis.Mode == ModeRemote && cfg.Analysis.Endpoint == "" {
		return nil, errors.New("invalid config: analysis.mode is remote but analysis.endpoint is empty")
	}
	return &cfg, nil
}

// ResolveMode returns the effective analysis mode. In auto mode a
// configured endpoint wins, then an available LLM, otherwise off.
func (c *Config) ResolveMode(llmAvailable bool) string {
	if c.Analysis.Mode != ModeAuto {
		return c.Analysis.Mode
	}
	switch {
	case c.Analysis.Endpoint != "":
		return ModeRemote
	case llmAvailable:
		return ModeLLM
	default:
		return ModeOff
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/mindcheck, falling back to
// ~/.config/mindcheck.
func DefaultConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mindcheck"), nil
}
