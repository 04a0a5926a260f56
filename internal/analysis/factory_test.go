package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/scoring"
)

func TestNew(t *testing.T) {
	mock := llm.NewMockProvider()

	tests := []struct {
		name     string
		opts     Options
		wantName string
		wantNil  bool
		wantErr  bool
	}{
		{name: "remote", opts: Options{Mode: BackendRemote, Endpoint: "http://localhost:8000/api/analyze-test", Timeout: time.Second}, wantName: BackendRemote},
		{name: "remote without endpoint", opts: Options{Mode: BackendRemote}, wantErr: true},
		{name: "llm", opts: Options{Mode: BackendLLM, Provider: mock}, wantName: BackendLLM},
		{name: "llm without provider", opts: Options{Mode: BackendLLM}, wantErr: true},
		{name: "off", opts: Options{Mode: BackendOff}, wantNil: true},
		{name: "empty", opts: Options{}, wantNil: true},
		{name: "unknown", opts: Options{Mode: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, tt.wantName, a.Name())
		})
	}
}

// stallingProvider never answers on its own.
type stallingProvider struct{}

func (stallingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallingProvider) ModelID() string { return "stall" }

func TestNew_LLMHonorsTimeout(t *testing.T) {
	a, err := New(Options{Mode: BackendLLM, Provider: stallingProvider{}, Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	_, err = a.Analyze(context.Background(), sampleResult())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestRiskFor(t *testing.T) {
	tests := []struct {
		band scoring.Band
		want string
		help bool
	}{
		{scoring.BandExcellent, RiskLow, false},
		{scoring.BandGood, RiskLow, false},
		{scoring.BandModerate, RiskMedium, false},
		{scoring.BandLow, RiskHigh, true},
		{scoring.BandCritical, RiskVeryHigh, true},
	}
	for _, tt := range tests {
		got := RiskFor(tt.band)
		assert.Equal(t, tt.want, got, "band %v", tt.band)
		assert.Equal(t, tt.help, NeedsProfessionalHelp(got), "band %v", tt.band)
	}
}

func TestCommentary(t *testing.T) {
	var nilResult *Result
	_, ok := nilResult.Commentary()
	assert.False(t, ok)

	empty := ""
	_, ok = (&Result{AIAnalysis: &empty}).Commentary()
	assert.False(t, ok)

	text := "fine"
	got, ok := (&Result{AIAnalysis: &text}).Commentary()
	assert.True(t, ok)
	assert.Equal(t, "fine", got)
}
