package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindcheck/internal/scoring"
)

func TestHTTPAnalyzer_Success(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   scoring.Result
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ai_analysis":"Sleep needs attention.","recommendations":["Keep a routine"],"risk_level":"Orta Risk","professional_help_needed":false}`)
	}))
	t.Cleanup(srv.Close)

	a := NewHTTPAnalyzer(srv.URL, time.Second)
	res, err := a.Analyze(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, 5, gotBody.TotalScore)
	assert.Len(t, gotBody.Answers, 2)

	text, ok := res.Commentary()
	require.True(t, ok)
	assert.Equal(t, "Sleep needs attention.", text)
	assert.Equal(t, []string{"Keep a routine"}, res.Recommendations)
	assert.Equal(t, "Orta Risk", res.RiskLevel)
	assert.Equal(t, BackendRemote, a.Name())
}

func TestHTTPAnalyzer_WireNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		_ = json.NewDecoder(r.Body).Decode(&raw)
		for _, k := range []string{"answers", "totalScore", "maxScore", "scorePercentage", "durationSeconds", "completedAt"} {
			if _, ok := raw[k]; !ok {
				http.Error(w, "missing "+k, http.StatusBadRequest)
				return
			}
		}
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	res, err := NewHTTPAnalyzer(srv.URL, time.Second).Analyze(context.Background(), sampleResult())
	require.NoError(t, err)

	_, ok := res.Commentary()
	assert.False(t, ok, "empty response has no commentary")
}

func TestHTTPAnalyzer_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := NewHTTPAnalyzer(srv.URL, time.Second).Analyze(context.Background(), sampleResult())
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se), "expected *StatusError, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "model not loaded", se.Body)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPAnalyzer_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPAnalyzer(url, time.Second).Analyze(context.Background(), sampleResult())
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se), "transport failure is not a status error")
}

func TestHTTPAnalyzer_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	start := time.Now()
	_, err := NewHTTPAnalyzer(srv.URL, 50*time.Millisecond).Analyze(context.Background(), sampleResult())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHTTPAnalyzer_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	}))
	t.Cleanup(srv.Close)

	_, err := NewHTTPAnalyzer(srv.URL, time.Second).Analyze(context.Background(), sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode analysis response")
}

func TestNewHTTPAnalyzer_DefaultTimeout(t *testing.T) {
	a := NewHTTPAnalyzer("http://example.invalid", 0)
	assert.Equal(t, DefaultTimeout, a.client.Timeout)
	assert.Equal(t, "http://example.invalid", a.Endpoint())
}
