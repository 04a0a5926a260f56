package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and test the LLM analysis backend",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		session, _ := cmd.Flags().GetString("session")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		shown := 0
		for _, e := range events {
			if (purpose != "" && e.Purpose != purpose) || (session != "" && e.SessionID != session) {
				continue
			}
			if shown == 0 {
				fmt.Fprintf(out, "%-5s  %-14s  %-12s  %-28s  %8s  %7s  %s\n",
					"ID", "When", "Purpose", "Model", "Tokens", "Ms", "OK")
				rule(out, 92)
			}
			shown++
			fmt.Fprintf(out, "%-5d  %-14s  %-12s  %-28s  %8s  %7d  %s\n",
				e.ID, humanize.Time(e.Timestamp), e.Purpose, truncate(e.Model, 28),
				humanize.Comma(int64(e.InputTokens+e.OutputTokens)), e.LatencyMs, mark(e.Success))
		}
		if shown == 0 {
			fmt.Fprintln(out, "No LLM requests recorded.")
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("LLM request %d not found", id)
		}

		out := cmd.OutOrStdout()
		field := func(name, value string) { fmt.Fprintf(out, "%-10s %s\n", name+":", value) }
		field("ID", strconv.FormatInt(e.ID, 10))
		field("Time", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		field("Provider", e.Provider)
		field("Model", e.Model)
		field("Purpose", e.Purpose)
		if e.SessionID != "" {
			field("Session", e.SessionID)
		}
		field("Tokens", fmt.Sprintf("%s in / %s out", humanize.Comma(int64(e.InputTokens)), humanize.Comma(int64(e.OutputTokens))))
		field("Latency", (time.Duration(e.LatencyMs) * time.Millisecond).String())
		field("Success", mark(e.Success))
		if e.ErrorMessage != "" {
			field("Error", e.ErrorMessage)
		}

		for _, part := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Fprintln(out)
			fmt.Fprintln(out, part.title)
			rule(out, 60)
			if part.body == "" {
				fmt.Fprintln(out, "(not captured)")
			} else {
				fmt.Fprintln(out, strings.TrimRight(part.body, "\n"))
			}
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.EventRepo()
		byPurpose, err := repo.LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		var calls, in, outTok int
		fmt.Fprintf(out, "%-16s  %6s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Avg Ms")
		rule(out, 58)
		for _, st := range byPurpose {
			fmt.Fprintf(out, "%-16s  %6d  %10s  %10s  %8d\n", st.Purpose, st.Calls,
				humanize.Comma(int64(st.InputTokens)), humanize.Comma(int64(st.OutputTokens)), st.AvgLatencyMs)
			calls += st.Calls
			in += st.InputTokens
			outTok += st.OutputTokens
		}
		rule(out, 58)
		fmt.Fprintf(out, "%-16s  %6d  %10s  %10s\n", "total", calls, humanize.Comma(int64(in)), humanize.Comma(int64(outTok)))

		byModel, err := repo.LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-32s  %6s  %10s\n", "Model", "Calls", "Cost (USD)")
		rule(out, 52)
		var total float64
		var unpriced []string
		for _, mu := range byModel {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unpriced = append(unpriced, mu.Model)
				fmt.Fprintf(out, "%-32s  %6d  %10s\n", truncate(mu.Model, 32), mu.Calls, "?")
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			fmt.Fprintf(out, "%-32s  %6d  %10s\n", truncate(mu.Model, 32), mu.Calls, formatCost(c))
		}
		rule(out, 52)
		label := "total"
		if len(unpriced) > 0 {
			label = "total (partial)"
		}
		fmt.Fprintf(out, "%-32s  %6s  %10s\n", label, "", formatCost(total))
		if len(unpriced) > 0 {
			fmt.Fprintf(out, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a one-line prompt to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := llm.WithPurpose(cmd.Context(), "smoke-test")
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("configure provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			System:    "You are a connectivity check. Answer in at most five words.",
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with: ok"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Model:     %s\n", provider.ModelID())
		fmt.Fprintf(out, "Latency:   %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(out, "Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Fprintf(out, "Response:  %s\n", strings.TrimSpace(string(resp.Content)))
		return nil
	},
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("─", n))
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show this purpose (analysis, smoke-test)")
	llmListCmd.Flags().StringP("session", "s", "", "Only show requests made for this test session")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd, llmTestCmd)
}
