package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindcheck/internal/analysis"
	"github.com/abhisek/mindcheck/internal/results"
	"github.com/abhisek/mindcheck/internal/scoring"
)

func sampleDisplay(commentary string) *results.Display {
	r := &scoring.Result{
		TotalScore:      34,
		MaxScore:        50,
		ScorePercentage: 68,
		DurationSeconds: 95,
		CompletedAt:     "2025-03-01T10:01:35.000Z",
	}
	d := &results.Display{
		Result:         r,
		Interpretation: scoring.Interpret(r.ScorePercentage),
		Recommend:      scoring.Recommend(r.ScorePercentage),
	}
	if commentary != "" {
		d.Analysis = &analysis.Result{AIAnalysis: &commentary, RiskLevel: analysis.RiskLow}
	}
	return d
}

func TestPrintDisplay_WithoutAnalysis(t *testing.T) {
	var buf bytes.Buffer
	printDisplay(&buf, sampleDisplay(""))
	out := buf.String()

	assert.Contains(t, out, "34 / 50 (68%)")
	assert.Contains(t, out, "Good Wellbeing")
	assert.Contains(t, out, "Duration:   1m35s")
	assert.NotContains(t, out, "AI analysis")
}

func TestPrintDisplay_WithAnalysis(t *testing.T) {
	var buf bytes.Buffer
	printDisplay(&buf, sampleDisplay(strings.Repeat("steady ", 30)))
	out := buf.String()

	assert.Contains(t, out, "AI analysis")
	assert.Contains(t, out, "Risk level: low")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), wrapWidth, "line too long: %q", line)
	}
}

func TestBullet_IndentsContinuation(t *testing.T) {
	got := bullet(strings.Repeat("word ", 20))
	lines := strings.Split(got, "\n")
	assert.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "  - "))
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, "    "), "continuation %q", l)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := confirm(strings.NewReader(tt.input), &out, "Proceed?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Proceed? [y/N]")
	}
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0042", formatCost(0.0042))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "claude", truncate("claude", 10))
	assert.Equal(t, "cla", truncate("claude", 3))
}

func TestBuildVersionFallsBack(t *testing.T) {
	assert.NotEmpty(t, buildVersion())

	old := version
	t.Cleanup(func() { version = old })
	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", buildVersion())
}

func TestCommandsUseCommandContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, args := range [][]string{
		{"reset", "--yes"},
		{"result"},
		{"share", "--print"},
		{"history"},
	} {
		t.Run(args[0], func(t *testing.T) {
			dir := t.TempDir()
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs(append(args, "--db", filepath.Join(dir, "test.db"), "--config-dir", dir))
			t.Cleanup(func() {
				rootCmd.SetArgs(nil)
				rootCmd.SetOut(nil)
			})

			err := rootCmd.ExecuteContext(ctx)
			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}
