// Package llm adapts chat completion providers to the idea evaluator.
package llm

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"workbench/config"
	"workbench/internal/domain/entity"
	"workbench/internal/domain/service"
	"workbench/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const upstreamName = "openai"

const systemPrompt = `You evaluate the credibility of business ideas.
Reply with a single JSON object and nothing else: {"score": <integer from 0 to 10>, "feedback": "<one or two sentences>"}.
10 means highly credible and viable, 0 means not credible at all.`

// ErrMalformedVerdict is returned when the model reply is not the expected JSON object.
var ErrMalformedVerdict = errors.New("malformed evaluation verdict")

type openAIEvaluator struct {
	client      *openai.Client
	configured  bool
	model       string
	temperature float32
	maxTokens   int
	metrics     *metrics.Metrics
}

// NewOpenAIEvaluator builds the evaluator. A missing API key yields an unconfigured evaluator.
func NewOpenAIEvaluator(cfg *config.Config, m *metrics.Metrics) service.IdeaEvaluator {
	oc := cfg.OpenAI
	if oc == nil {
		oc = &config.OpenAIConfig{}
	}

	clientConfig := openai.DefaultConfig(oc.APIKey)
	if oc.BaseURL != "" {
		clientConfig.BaseURL = oc.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: oc.Timeout}

	model := oc.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &openAIEvaluator{
		client:      openai.NewClientWithConfig(clientConfig),
		configured:  oc.APIKey != "",
		model:       model,
		temperature: oc.Temperature,
		maxTokens:   oc.MaxTokens,
		metrics:     m,
	}
}

func (e *openAIEvaluator) Configured() bool {
	return e.configured
}

// Evaluate sends the idea as the user message and normalizes the verdict.
func (e *openAIEvaluator) Evaluate(ctx context.Context, idea string) (*entity.IdeaEvaluation, error) {
	evaluation, err := e.evaluate(ctx, idea)
	e.metrics.ObserveUpstream(upstreamName, err)

	return evaluation, err
}

func (e *openAIEvaluator) evaluate(ctx context.Context, idea string) (*entity.IdeaEvaluation, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: idea},
		},
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return nil, errors.Wrap(err, "chat completion failed")
	}

	if len(resp.Choices) == 0 {
		return nil, errors.Wrap(ErrMalformedVerdict, "no choices returned")
	}

	return parseVerdict(resp.Choices[0].Message.Content)
}

type verdict struct {
	Score    json.RawMessage `json:"score"`
	Feedback string          `json:"feedback"`
}

// parseVerdict accepts the score as a JSON number or a numeric string.
func parseVerdict(content string) (*entity.IdeaEvaluation, error) {
	var v verdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &v); err != nil {
		return nil, errors.Wrap(ErrMalformedVerdict, err.Error())
	}

	raw := strings.Trim(strings.TrimSpace(string(v.Score)), `"`)
	if raw == "" || raw == "null" {
		return nil, errors.Wrap(ErrMalformedVerdict, "score is missing")
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, errors.Wrapf(ErrMalformedVerdict, "score %q is not a number", raw)
	}

	evaluation := entity.NewIdeaEvaluation(score, strings.TrimSpace(v.Feedback))

	return &evaluation, nil
}
