// Package llm wraps the OpenAI chat completion API with retry handling.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// CompletionAPI is the subset of the OpenAI client used here.
// *openai.Client satisfies it.
type CompletionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds the settings needed to reach the model.
type Config struct {
	APIKey  string
	BaseURL string // empty for the default endpoint
	Model   string
}

// Client calls the chat completion endpoint, retrying rate limits, server
// errors, and transport failures with bounded exponential backoff.
type Client struct {
	api             CompletionAPI
	model           string
	logger          zerolog.Logger
	maxRetries      uint64
	initialInterval time.Duration
}

// New creates a Client for the configured model.
func New(cfg Config, logger zerolog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:             openai.NewClientWithConfig(apiCfg),
		model:           cfg.Model,
		logger:          logger,
		maxRetries:      3,
		initialInterval: 500 * time.Millisecond,
	}
}

// Complete sends one chat completion request and returns the assistant
// message of the first choice.
func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Tools:    tools,
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval

	resp, err := backoff.RetryWithData(func() (openai.ChatCompletionResponse, error) {
		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !isRetryable(err) {
			return resp, backoff.Permanent(err)
		}
		c.logger.Warn().Err(err).Msg("transient completion error, retrying")
		return resp, err
	}, backoff.WithContext(backoff.WithMaxRetries(b, c.maxRetries), ctx))
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}

	// Transport-level failures carry no status code.
	return true
}
