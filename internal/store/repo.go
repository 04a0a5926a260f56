package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // id > After
	Before int64     // id < Before
	From   time.Time // created_at >= From
	To     time.Time // created_at <= To
}

// KVRepo is a durable string-keyed store. Writes to one key are atomic
// and replace any previous value.
type KVRepo interface {
	// Put stores value under key, overwriting any prior value.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Delete removes all given keys in one statement.
	Delete(ctx context.Context, keys ...string) error
}

// Event is one row of the event log.
type Event struct {
	ID        int64
	Kind      string
	SessionID string
	Timestamp time.Time
	Payload   json.RawMessage
}

// SessionEventData captures one milestone of a test session.
type SessionEventData struct {
	SessionID       string  `json:"-"`
	Action          string  `json:"action"`
	QuestionIndex   int     `json:"questionIndex,omitempty"`
	QuestionID      int     `json:"questionId,omitempty"`
	Value           int     `json:"value,omitempty"`
	AnsweredCount   int     `json:"answeredCount,omitempty"`
	TotalScore      int     `json:"totalScore,omitempty"`
	MaxScore        int     `json:"maxScore,omitempty"`
	ScorePercentage float64 `json:"scorePercentage,omitempty"`
	Band            string  `json:"band,omitempty"`
	DurationSecs    float64 `json:"durationSecs,omitempty"`
}

// Session event actions.
const (
	ActionStart  = "start"
	ActionAnswer = "answer"
	ActionFinish = "finish"
)

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	ID        int64
	Timestamp time.Time
	SessionEventData
}

// AnalysisEventData captures one analysis request and its outcome.
type AnalysisEventData struct {
	Backend      string `json:"backend"`
	Endpoint     string `json:"endpoint,omitempty"`
	LatencyMs    int64  `json:"latencyMs"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
}

// AnalysisEventRecord is a stored analysis event.
type AnalysisEventRecord struct {
	ID        int64
	SessionID string
	Timestamp time.Time
	AnalysisEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	SessionID    string `json:"-"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	Purpose      string `json:"purpose"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
	LatencyMs    int64  `json:"latencyMs"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
	RequestBody  string `json:"request,omitempty"`
	ResponseBody string `json:"response,omitempty"`
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStats aggregates LLM token usage under one grouping key.
type UsageStats struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendSessionEvent records a session milestone.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnalysisEvent records an analysis request outcome.
	AppendAnalysisEvent(ctx context.Context, sessionID string, data AnalysisEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionEvents returns session events with the given action
	// ("" for all), newest first.
	QuerySessionEvents(ctx context.Context, action string, opts QueryOpts) ([]SessionEventRecord, error)

	// QueryAnalysisEvents returns analysis events, newest first.
	QueryAnalysisEvents(ctx context.Context, opts QueryOpts) ([]AnalysisEventRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStats, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]UsageStats, error)
}
