package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/mindcheck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently finished tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		finished, err := st.EventRepo().QuerySessionEvents(ctx, store.ActionFinish, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(finished) == 0 {
			fmt.Println("No finished tests yet.")
			return nil
		}

		fmt.Printf("%-16s  %-7s  %5s  %-10s  %s\n", "Finished", "Score", "Pct", "Band", "Took")
		fmt.Println(strings.Repeat("─", 60))
		for _, e := range finished {
			fmt.Printf("%-16s  %-7s  %4.0f%%  %-10s  %s\n",
				humanize.Time(e.Timestamp),
				fmt.Sprintf("%d/%d", e.TotalScore, e.MaxScore),
				e.ScorePercentage,
				e.Band,
				time.Duration(e.DurationSecs*float64(time.Second)).Round(time.Second),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of tests to show")
}
