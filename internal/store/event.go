package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo over the single events table. Each row
// carries its kind and a JSON payload; ids give a global append order.
type eventRepo struct {
	drv *entsql.Driver
}

// append writes one event row.
func (r *eventRepo) append(ctx context.Context, kind, sessionID string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", kind, err)
	}

	query, args := builder().Insert(eventsTable).
		Columns("kind", "session_id", "payload", "created_at").
		Values(kind, sessionID, string(b), time.Now().UTC().Format(time.RFC3339Nano)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save %s event: %w", kind, err)
	}
	return nil
}

// query reads events of one kind, newest first.
func (r *eventRepo) query(ctx context.Context, kind string, opts QueryOpts, extra ...*entsql.Predicate) ([]Event, error) {
	preds := []*entsql.Predicate{entsql.EQ("kind", kind)}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("id", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("id", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("created_at", opts.From.UTC().Format(time.RFC3339Nano)))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("created_at", opts.To.UTC().Format(time.RFC3339Nano)))
	}
	preds = append(preds, extra...)

	sel := builder().Select("id", "kind", "session_id", "payload", "created_at").
		From(entsql.Table(eventsTable)).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Desc("id"))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query %s events: %w", kind, err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e       Event
			payload string
			created string
		)
		if err := rows.Scan(&e.ID, &e.Kind, &e.SessionID, &payload, &created); err != nil {
			return nil, fmt.Errorf("scan %s event: %w", kind, err)
		}
		e.Payload = json.RawMessage(payload)
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s events: %w", kind, err)
	}
	return out, nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	return r.append(ctx, KindSession, data.SessionID, data)
}

func (r *eventRepo) AppendAnalysisEvent(ctx context.Context, sessionID string, data AnalysisEventData) error {
	return r.append(ctx, KindAnalysis, sessionID, data)
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	return r.append(ctx, KindLLMRequest, data.SessionID, data)
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, action string, opts QueryOpts) ([]SessionEventRecord, error) {
	var extra []*entsql.Predicate
	if action != "" {
		extra = append(extra, entsql.ExprP("json_extract(payload, '$.action') = ?", action))
	}
	events, err := r.query(ctx, KindSession, opts, extra...)
	if err != nil {
		return nil, err
	}

	out := make([]SessionEventRecord, 0, len(events))
	for _, e := range events {
		rec := SessionEventRecord{ID: e.ID, Timestamp: e.Timestamp}
		if err := json.Unmarshal(e.Payload, &rec.SessionEventData); err != nil {
			return nil, fmt.Errorf("decode session event %d: %w", e.ID, err)
		}
		rec.SessionID = e.SessionID
		out = append(out, rec)
	}
	return out, nil
}

func (r *eventRepo) QueryAnalysisEvents(ctx context.Context, opts QueryOpts) ([]AnalysisEventRecord, error) {
	events, err := r.query(ctx, KindAnalysis, opts)
	if err != nil {
		return nil, err
	}

	out := make([]AnalysisEventRecord, 0, len(events))
	for _, e := range events {
		rec := AnalysisEventRecord{ID: e.ID, SessionID: e.SessionID, Timestamp: e.Timestamp}
		if err := json.Unmarshal(e.Payload, &rec.AnalysisEventData); err != nil {
			return nil, fmt.Errorf("decode analysis event %d: %w", e.ID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	events, err := r.query(ctx, KindLLMRequest, opts)
	if err != nil {
		return nil, err
	}
	return decodeLLMEvents(events)
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEventRecord, error) {
	events, err := r.query(ctx, KindLLMRequest, QueryOpts{Limit: 1}, entsql.EQ("id", id))
	if err != nil {
		return nil, err
	}
	recs, err := decodeLLMEvents(events)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageStats, error) {
	return r.llmUsage(ctx, func(e LLMRequestEventData) UsageStats {
		return UsageStats{Purpose: e.Purpose}
	})
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]UsageStats, error) {
	return r.llmUsage(ctx, func(e LLMRequestEventData) UsageStats {
		return UsageStats{Model: e.Model}
	})
}

// llmUsage groups LLM events by the key returned from group, preserving
// first-seen order from oldest to newest.
func (r *eventRepo) llmUsage(ctx context.Context, group func(LLMRequestEventData) UsageStats) ([]UsageStats, error) {
	recs, err := r.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		return nil, err
	}

	var (
		out       []UsageStats
		index     = make(map[UsageStats]int)
		latencies []int64
	)
	for i := len(recs) - 1; i >= 0; i-- {
		e := recs[i].LLMRequestEventData
		key := group(e)
		pos, ok := index[key]
		if !ok {
			pos = len(out)
			index[key] = pos
			out = append(out, key)
			latencies = append(latencies, 0)
		}
		out[pos].Calls++
		out[pos].InputTokens += e.InputTokens
		out[pos].OutputTokens += e.OutputTokens
		latencies[pos] += e.LatencyMs
	}
	for i := range out {
		out[i].AvgLatencyMs = latencies[i] / int64(out[i].Calls)
	}
	return out, nil
}

func decodeLLMEvents(events []Event) ([]LLMRequestEventRecord, error) {
	out := make([]LLMRequestEventRecord, 0, len(events))
	for _, e := range events {
		rec := LLMRequestEventRecord{ID: e.ID, Timestamp: e.Timestamp}
		if err := json.Unmarshal(e.Payload, &rec.LLMRequestEventData); err != nil {
			return nil, fmt.Errorf("decode LLM event %d: %w", e.ID, err)
		}
		rec.SessionID = e.SessionID
		out = append(out, rec)
	}
	return out, nil
}
