// Package results persists finished test results and bridges them to the
// analysis backend.
package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/mindcheck/internal/analysis"
	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/store"
)

// Storage keys. Each holds at most one value; writing replaces it.
const (
	KeyTestResults    = "testResults"
	KeyAnalysisResult = "analysisResult"
)

// ErrNoSession is returned by LoadForDisplay when no result is stored.
var ErrNoSession = errors.New("no completed test found")

// errSuperseded is logged when an analysis returns after its result was
// replaced or cleared.
var errSuperseded = errors.New("analysis superseded by a newer result")

// storedAnalysis is the value under KeyAnalysisResult. CompletedAt ties it
// to the result it was requested for.
type storedAnalysis struct {
	analysis.Result
	CompletedAt string `json:"completedAt"`
}

// Display is everything the results view needs.
type Display struct {
	Result         *scoring.Result
	Interpretation scoring.Interpretation
	Recommend      []string

	// Analysis is nil when no analysis has been stored.
	Analysis *analysis.Result
}

// Bridge writes results to durable storage and requests commentary.
type Bridge struct {
	kv       store.KVRepo
	events   store.EventRepo
	analyzer analysis.Analyzer
	now      func() time.Time

	// mu guards current and cancel. current is the session whose result
	// is stored; only its analysis may be written.
	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithAnalyzer sets the analysis backend. Without one, RequestAnalysis is
// a no-op.
func WithAnalyzer(a analysis.Analyzer) Option {
	return func(b *Bridge) { b.analyzer = a }
}

// WithEventRepo enables event logging.
func WithEventRepo(r store.EventRepo) Option {
	return func(b *Bridge) { b.events = r }
}

// WithClock overrides the completion timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Bridge) { b.now = now }
}

// NewBridge creates a Bridge over kv.
func NewBridge(kv store.KVRepo, opts ...Option) *Bridge {
	b := &Bridge{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// HasAnalyzer reports whether an analysis backend is configured.
func (b *Bridge) HasAnalyzer() bool {
	return b.analyzer != nil
}

// Finalize computes the result of a completed session and stores it,
// replacing any earlier result and its analysis.
func (b *Bridge) Finalize(ctx context.Context, s *assessment.Session) (*scoring.Result, error) {
	result := scoring.ComputeResult(s, b.now())

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	b.mu.Lock()
	b.supersedeLocked(s.ID)
	err = b.kv.Delete(ctx, KeyAnalysisResult)
	if err == nil {
		err = b.kv.Put(ctx, KeyTestResults, data)
	}
	b.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	b.appendSession(ctx, store.SessionEventData{
		SessionID:       s.ID,
		Action:          store.ActionFinish,
		AnsweredCount:   len(result.Answers),
		TotalScore:      result.TotalScore,
		MaxScore:        result.MaxScore,
		ScorePercentage: result.ScorePercentage,
		Band:            result.Band().String(),
		DurationSecs:    result.DurationSeconds,
	})
	return result, nil
}

// RequestAnalysis makes one call to the analyzer and stores a successful
// response. Failures are recorded in the event log and never returned;
// the result stays persisted either way. A response that arrives after
// Finalize or Restart moved on from sessionID is dropped.
func (b *Bridge) RequestAnalysis(ctx context.Context, sessionID string, result *scoring.Result) {
	if b.analyzer == nil {
		return
	}

	b.mu.Lock()
	if b.current != sessionID {
		b.mu.Unlock()
		b.appendAnalysis(ctx, sessionID, store.AnalysisEventData{
			Backend:      b.analyzer.Name(),
			ErrorMessage: errSuperseded.Error(),
		})
		return
	}
	ctx, cancel := context.WithCancel(llm.WithSession(ctx, sessionID))
	b.cancel = cancel
	b.mu.Unlock()
	defer cancel()

	start := time.Now()
	res, err := b.analyzer.Analyze(ctx, result)
	ev := store.AnalysisEventData{
		Backend:   b.analyzer.Name(),
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if h, ok := b.analyzer.(*analysis.HTTPAnalyzer); ok {
		ev.Endpoint = h.Endpoint()
	}

	switch {
	case err == nil:
		err = b.storeAnalysis(ctx, sessionID, result, res)
	case errors.Is(err, context.Canceled) && !b.isCurrent(sessionID):
		err = errSuperseded
	}
	ev.Success = err == nil
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	b.appendAnalysis(ctx, sessionID, ev)
}

func (b *Bridge) isCurrent(sessionID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current == sessionID
}

// storeAnalysis writes res if sessionID is still the current session.
func (b *Bridge) storeAnalysis(ctx context.Context, sessionID string, result *scoring.Result, res *analysis.Result) error {
	data, err := json.Marshal(storedAnalysis{Result: *res, CompletedAt: result.CompletedAt})
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current != sessionID {
		return errSuperseded
	}
	if err := b.kv.Put(context.WithoutCancel(ctx), KeyAnalysisResult, data); err != nil {
		return fmt.Errorf("store analysis: %w", err)
	}
	return nil
}

func (b *Bridge) appendAnalysis(ctx context.Context, sessionID string, ev store.AnalysisEventData) {
	if b.events == nil {
		return
	}
	// Best effort: the event log never blocks the result flow.
	_ = b.events.AppendAnalysisEvent(context.WithoutCancel(ctx), sessionID, ev)
}

// LoadForDisplay reads the stored result and, if present, its analysis.
func (b *Bridge) LoadForDisplay(ctx context.Context) (*Display, error) {
	data, ok, err := b.kv.Get(ctx, KeyTestResults)
	if err != nil {
		return nil, fmt.Errorf("load result: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}

	var result scoring.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	d := &Display{
		Result:         &result,
		Interpretation: scoring.Interpret(result.ScorePercentage),
		Recommend:      scoring.Recommend(result.ScorePercentage),
	}

	data, ok, err = b.kv.Get(ctx, KeyAnalysisResult)
	if err != nil {
		return nil, fmt.Errorf("load analysis: %w", err)
	}
	if ok {
		var a storedAnalysis
		// A corrupt analysis, or one written for another result, is
		// treated as absent.
		if err := json.Unmarshal(data, &a); err == nil && a.CompletedAt == result.CompletedAt {
			d.Analysis = &a.Result
		}
	}
	return d, nil
}

// Restart clears the stored result and analysis together and abandons any
// analysis still in flight.
func (b *Bridge) Restart(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.supersedeLocked("")
	if err := b.kv.Delete(ctx, KeyTestResults, KeyAnalysisResult); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}

// supersedeLocked cancels the in-flight analysis and makes sessionID the
// current session. b.mu must be held.
func (b *Bridge) supersedeLocked(sessionID string) {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.current = sessionID
}

func (b *Bridge) appendSession(ctx context.Context, data store.SessionEventData) {
	if b.events == nil {
		return
	}
	_ = b.events.AppendSessionEvent(ctx, data)
}
