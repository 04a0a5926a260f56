package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindcheck/internal/app"
	"github.com/abhisek/mindcheck/internal/catalog"
	"github.com/abhisek/mindcheck/internal/screens"
	"github.com/abhisek/mindcheck/internal/share"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	bridge, mode, err := newBridge(cmd.Context(), st, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analysis backend not available:", err)
		fmt.Fprintln(os.Stderr, "Results will be shown without AI commentary.")
		if bridge, mode, err = newBridge(cmd.Context(), st, false); err != nil {
			return err
		}
	}

	env := &screens.Env{
		Catalog:  catalog.Default(),
		Bridge:   bridge,
		Share:    share.NewService(),
		ShareURL: cfg.Share.URL,
		Events:   st.EventRepo(),
	}
	return app.Run(cmd.Context(), app.Options{
		Env:    env,
		Status: "analysis: " + mode,
	})
}
