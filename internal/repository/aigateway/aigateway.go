// Package aigateway wraps the OpenAI-compatible gateway used for all
// generation calls. Responses are forced through a strict JSON schema;
// a reply without a conforming payload is a hard failure.
package aigateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"careerCompass/pkg/metrics"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

var (
	// ErrRateLimited is returned when the provider answers HTTP 429.
	ErrRateLimited = errors.New("aigateway: rate limited")
	// ErrQuotaExceeded is returned when the provider answers HTTP 402.
	ErrQuotaExceeded = errors.New("aigateway: quota exceeded")
	// ErrGenerationFailed is returned for any other non-2xx provider answer.
	ErrGenerationFailed = errors.New("aigateway: generation failed")
	// ErrNoResult is returned when the reply carries no parseable structured payload.
	ErrNoResult = errors.New("aigateway: no result produced")
)

type GatewayConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type GatewayRepository struct {
	client openai.Client
	model  string
}

func NewGatewayRepository(cfg GatewayConfig) *GatewayRepository {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &GatewayRepository{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (r *GatewayRepository) Model() string {
	return r.model
}

// GenerateStructured runs one chat completion with a strict JSON schema and
// unmarshals the reply into out. No retry: a failed call aborts the unit of work.
func (r *GatewayRepository) GenerateStructured(ctx context.Context, instructions, prompt, schemaName string, schema map[string]any, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instructions),
			openai.UserMessage(prompt),
		},
		Model: r.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Strict: openai.Bool(true),
					Schema: schema,
				},
			},
		},
	})
	if err != nil {
		return classify(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		metrics.AIGatewayErrors.WithLabelValues("no_result").Inc()
		return ErrNoResult
	}

	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		metrics.AIGatewayErrors.WithLabelValues("no_result").Inc()
		return fmt.Errorf("%w: %v", ErrNoResult, err)
	}

	return nil
}

// GenerateText runs one plain chat completion and returns the text reply.
func (r *GatewayRepository) GenerateText(ctx context.Context, instructions, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instructions),
			openai.UserMessage(prompt),
		},
		Model: r.model,
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		metrics.AIGatewayErrors.WithLabelValues("no_result").Inc()
		return "", ErrNoResult
	}

	return resp.Choices[0].Message.Content, nil
}

// classify maps provider status codes onto the package error taxonomy.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.StatusCode, err)
	}
	metrics.AIGatewayErrors.WithLabelValues("failed").Inc()
	return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}

func classifyStatus(status int, err error) error {
	switch status {
	case http.StatusTooManyRequests:
		metrics.AIGatewayErrors.WithLabelValues("rate_limited").Inc()
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case http.StatusPaymentRequired:
		metrics.AIGatewayErrors.WithLabelValues("quota").Inc()
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	default:
		metrics.AIGatewayErrors.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
}
