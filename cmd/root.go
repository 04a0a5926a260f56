package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindcheck/internal/config"
	"github.com/abhisek/mindcheck/internal/store"
)

// cfg is loaded before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mindcheck",
	Short: "Private wellbeing self-assessment in your terminal",
	Long: "mindcheck walks you through a short ten-question self-assessment of mood, sleep,\n" +
		"stress and related areas, scores it, and optionally asks an analysis backend for\n" +
		"personalized commentary. It is a reflection aid, not a diagnosis.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("config-dir")
		c, err := config.Load(config.LoadOptions{ConfigDir: dir})
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDCHECK_DB env var)")
	rootCmd.PersistentFlags().String("config-dir", "", "Directory containing config.yaml (default $XDG_CONFIG_HOME/mindcheck)")

	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the db config key (which MINDCHECK_DB also sets), then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
