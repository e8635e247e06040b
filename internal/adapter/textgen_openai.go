package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	chatCompletionsPath  = "/chat/completions"
)

type chatCompletionRequest struct {
	Model     string               `json:"model"`
	MaxTokens int                  `json:"max_tokens,omitempty"`
	Messages  []models.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIGenerator struct {
	client    *utils.HTTPClient
	model     string
	maxTokens int

	logger *logger.Logger
}

// NewOpenAIGenerator returns a [TextGenerator] for any OpenAI-compatible
// chat completions endpoint. cfg.BaseURL defaults to the public OpenAI API.
func NewOpenAIGenerator(cfg config.TextGen, timeout time.Duration, log *logger.Logger) TextGenerator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &openAIGenerator{client: client, model: cfg.Model, maxTokens: cfg.MaxTokens, logger: log}
}

func (g *openAIGenerator) Provider() string {
	return config.ProviderOpenAI
}

// Generate implements [TextGenerator] via POST /chat/completions.
func (g *openAIGenerator) Generate(ctx context.Context, messages []models.ChatMessage) (string, error) {
	var out chatCompletionResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{Model: g.model, MaxTokens: g.maxTokens, Messages: messages}).
		SetResult(&out).
		Post(chatCompletionsPath)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
