package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindcheck/internal/results"
	"github.com/abhisek/mindcheck/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share a one-line summary of the stored result",
	RunE: func(cmd *cobra.Command, args []string) error {
		printOnly, _ := cmd.Flags().GetBool("print")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		bridge, _, err := newBridge(cmd.Context(), st, false)
		if err != nil {
			return err
		}
		d, err := bridge.LoadForDisplay(cmd.Context())
		if errors.Is(err, results.ErrNoSession) {
			fmt.Fprintln(os.Stderr, noSessionHint)
			return nil
		}
		if err != nil {
			return err
		}

		text := share.Summary(d.Result, cfg.Share.URL)
		if printOnly {
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}

		ch, err := share.NewService().Share(cmd.Context(), text)
		if err != nil {
			return err
		}
		switch ch {
		case share.ChannelClipboard:
			fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard:")
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "Shared:")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "  "+text)
		return nil
	},
}

func init() {
	shareCmd.Flags().Bool("print", false, "Print the summary instead of sharing it")
}
