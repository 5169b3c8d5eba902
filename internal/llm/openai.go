package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	app_errors "pdf-chat/internal/errors"
)

// LLMProvider defines the interface for interacting with a language model.
type LLMProvider interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}

type GenerateRequest struct {
	Model    string
	Messages []Message
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GenerateResponse struct {
	Model            string
	Response         string
	PromptTokens     int
	CompletionTokens int
}

// Config carries the opaque credential and endpoint of the completion API.
type Config struct {
	APIKey  string
	BaseURL string
	// HTTPClient is optional; tests point it at an httptest server.
	HTTPClient *http.Client
}

type openaiProvider struct {
	client openai.Client
}

// NewOpenAIProvider creates an LLMProvider backed by an OpenAI-compatible
// chat completion endpoint. Requests are never retried.
func NewOpenAIProvider(cfg Config) LLMProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &openaiProvider{client: openai.NewClient(opts...)}
}

func (p *openaiProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	messages, err := convertMessages(req.Messages)
	if err != nil {
		return nil, err
	}

	params := openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: messages,
	}

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			slog.WarnContext(ctx, "completion API returned an error",
				"model", req.Model,
				"status_code", apiErr.StatusCode)
		}
		return nil, fmt.Errorf("%w: %w", app_errors.ErrRemoteCall, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", app_errors.ErrRemoteCall)
	}

	slog.DebugContext(ctx, "chat completion finished",
		"model", resp.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return &GenerateResponse{
		Model:            resp.Model,
		Response:         resp.Choices[0].Message.Content,
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
	}, nil
}

func convertMessages(msgs []Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case "system":
			result = append(result, openai.SystemMessage(msg.Content))
		case "user":
			result = append(result, openai.UserMessage(msg.Content))
		case "assistant":
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			return nil, fmt.Errorf("%w: unsupported message role %q", app_errors.ErrInternal, msg.Role)
		}
	}
	return result, nil
}
