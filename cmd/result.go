package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/abhisek/mindcheck/internal/results"
)

const wrapWidth = 72

const noSessionHint = "No completed test found. Run `mindcheck` to take the self-assessment."

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Print the stored test result and analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

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

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}
		printDisplay(cmd.OutOrStdout(), d)
		return nil
	},
}

// printDisplay writes a plain-text rendering of d.
func printDisplay(w io.Writer, d *results.Display) {
	r := d.Result
	sep := strings.Repeat("─", wrapWidth)

	fmt.Fprintf(w, "Score:      %d / %d (%d%%)\n", r.TotalScore, r.MaxScore, r.RoundedPercentage())
	fmt.Fprintf(w, "Band:       %s\n", d.Interpretation.Title)
	fmt.Fprintf(w, "Completed:  %s\n", r.CompletedAt)
	fmt.Fprintf(w, "Duration:   %s\n", time.Duration(r.DurationSeconds*float64(time.Second)).Round(time.Second))
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.WrapString(d.Interpretation.Description, wrapWidth))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommendations")
	fmt.Fprintln(w, sep)
	for _, rec := range d.Recommend {
		fmt.Fprintln(w, bullet(rec))
	}

	text, ok := d.Analysis.Commentary()
	if !ok {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "AI analysis")
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, wordwrap.WrapString(text, wrapWidth))
	if len(d.Analysis.Recommendations) > 0 {
		fmt.Fprintln(w)
		for _, rec := range d.Analysis.Recommendations {
			fmt.Fprintln(w, bullet(rec))
		}
	}
	if d.Analysis.RiskLevel != "" {
		fmt.Fprintf(w, "\nRisk level: %s\n", d.Analysis.RiskLevel)
	}
	if d.Analysis.ProfessionalHelpNeeded {
		fmt.Fprintln(w, "Talking to a mental health professional is recommended.")
	}
}

// bullet wraps s and indents continuation lines under the marker.
func bullet(s string) string {
	wrapped := wordwrap.WrapString(s, wrapWidth-4)
	return "  - " + strings.ReplaceAll(wrapped, "\n", "\n    ")
}

func init() {
	resultCmd.Flags().Bool("json", false, "Print the stored data as JSON")
}
