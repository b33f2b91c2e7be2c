package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workbench/config"
	"workbench/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluatorServer(t *testing.T, status int, content string, captured *map[string]any) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = fmt.Fprint(w, `{"error":{"message":"rate limited","type":"requests"}}`)

			return
		}

		body, _ := json.Marshal(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{OpenAI: &config.OpenAIConfig{
		APIKey:      "sk-test",
		BaseURL:     baseURL,
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   200,
		Timeout:     5 * time.Second,
	}}
}

func TestOpenAIEvaluator_Evaluate(t *testing.T) {
	var captured map[string]any
	server := newTestEvaluatorServer(t, http.StatusOK, ` {"score": 7.6, "feedback": "Solid market."} `, &captured)

	evaluator := NewOpenAIEvaluator(newTestConfig(server.URL), metrics.New())
	require.True(t, evaluator.Configured())

	evaluation, err := evaluator.Evaluate(context.Background(), "meal kits for dogs")
	require.NoError(t, err)
	assert.Equal(t, 8, evaluation.Score)
	assert.Equal(t, "Solid market.", evaluation.Feedback)

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.InDelta(t, 0.7, captured["temperature"], 0.001)
	assert.InDelta(t, 200, captured["max_tokens"], 0)

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "meal kits for dogs", messages[1].(map[string]any)["content"])
}

func TestOpenAIEvaluator_UpstreamError(t *testing.T) {
	server := newTestEvaluatorServer(t, http.StatusTooManyRequests, "", nil)
	evaluator := NewOpenAIEvaluator(newTestConfig(server.URL), nil)

	_, err := evaluator.Evaluate(context.Background(), "idea")
	assert.Error(t, err)
}

func TestOpenAIEvaluator_MalformedContent(t *testing.T) {
	server := newTestEvaluatorServer(t, http.StatusOK, "I think it's great!", nil)
	evaluator := NewOpenAIEvaluator(newTestConfig(server.URL), nil)

	_, err := evaluator.Evaluate(context.Background(), "idea")
	assert.True(t, errors.Is(err, ErrMalformedVerdict))
}

func TestOpenAIEvaluator_NotConfigured(t *testing.T) {
	evaluator := NewOpenAIEvaluator(&config.Config{}, nil)
	assert.False(t, evaluator.Configured())
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantScore    int
		wantFeedback string
		wantErr      bool
	}{
		{name: "integer", content: `{"score": 4, "feedback": "Meh."}`, wantScore: 4, wantFeedback: "Meh."},
		{name: "rounds half up", content: `{"score": 6.5, "feedback": "ok"}`, wantScore: 7, wantFeedback: "ok"},
		{name: "clamps high", content: `{"score": 42, "feedback": "wow"}`, wantScore: 10, wantFeedback: "wow"},
		{name: "clamps low", content: `{"score": -3, "feedback": "no"}`, wantScore: 0, wantFeedback: "no"},
		{name: "clamps huge", content: `{"score": 1e20, "feedback": "wow"}`, wantScore: 10, wantFeedback: "wow"},
		{name: "clamps beyond int64", content: `{"score": 9.3e18, "feedback": "wow"}`, wantScore: 10, wantFeedback: "wow"},
		{name: "clamps huge negative", content: `{"score": -1e20, "feedback": "no"}`, wantScore: 0, wantFeedback: "no"},
		{name: "numeric string", content: `{"score": "9", "feedback": "yes"}`, wantScore: 9, wantFeedback: "yes"},
		{name: "default feedback", content: `{"score": 5}`, wantScore: 5, wantFeedback: "No feedback provided."},
		{name: "blank feedback", content: `{"score": 5, "feedback": "  "}`, wantScore: 5, wantFeedback: "No feedback provided."},
		{name: "non numeric score", content: `{"score": "high", "feedback": "x"}`, wantErr: true},
		{name: "missing score", content: `{"feedback": "x"}`, wantErr: true},
		{name: "not json", content: `score: 5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVerdict(tt.content)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedVerdict))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantFeedback, got.Feedback)
		})
	}
}
