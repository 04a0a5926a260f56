package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServer answers every request with status and body, and hands the
// decoded request body to inspect when it is non-nil.
func chatServer(t *testing.T, status int, body any, inspect func(map[string]any)) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			var got map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			inspect(got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return newOpenAICompatible("test-key", server.URL+"/v1", "gpt-4o-mini", nil)
}

func completion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	body := completion(`{"analysis":"You seem well rested.","recommendations":["Keep a sleep routine"]}`, "stop")
	var sent map[string]any
	p := chatServer(t, http.StatusOK, body, func(m map[string]any) { sent = m })

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a supportive wellbeing assistant.",
		Messages:  []Message{{Role: RoleUser, Content: "Analyze these answers."}},
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)

	msgs, ok := sent["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Nil(t, sent["response_format"])
}

func TestOpenAIProvider_SendsJSONSchema(t *testing.T) {
	body := completion(`{"analysis":"Fine.","risk_level":"low"}`, "stop")
	var sent map[string]any
	p := chatServer(t, http.StatusOK, body, func(m map[string]any) { sent = m })

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Analyze."}},
		MaxTokens: 256,
		Schema:    testSchema(),
	})
	require.NoError(t, err)

	format, ok := sent["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
	assert.Equal(t, testSchema().Name, format["json_schema"].(map[string]any)["name"])
}

func TestOpenAIProvider_LengthStopIsTruncation(t *testing.T) {
	p := chatServer(t, http.StatusOK, completion(`{"analysis":"Fi`, "length"), nil)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Analyze."}},
		MaxTokens: 8,
		Schema:    testSchema(),
	})
	var trunc *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &trunc)
}

func TestOpenAIProvider_ErrorStatuses(t *testing.T) {
	errBody := map[string]any{"error": map[string]any{"type": "x", "message": "nope"}}

	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"rate limit", http.StatusTooManyRequests, func(t *testing.T, err error) {
			var e *ErrRateLimit
			assert.ErrorAs(t, err, &e)
		}},
		{"bad key", http.StatusUnauthorized, func(t *testing.T, err error) {
			var e *ErrUnauthorized
			assert.ErrorAs(t, err, &e)
		}},
		{"server error", http.StatusInternalServerError, func(t *testing.T, err error) {
			var e *ErrProviderUnavailable
			assert.ErrorAs(t, err, &e)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := chatServer(t, tt.status, errBody, nil)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	body := completion("", "stop")
	body["choices"] = []any{}
	p := chatServer(t, http.StatusOK, body, nil)

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"})
	assert.Error(t, err)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: "https://example.invalid/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())
}
