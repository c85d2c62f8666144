package openai

import (
	"call-relay/internal/callsession"
	"call-relay/internal/config"
	"call-relay/internal/observability"
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

var ErrEmptyCompletion = errors.New("completion returned no choices")

// ChatClient asks an OpenAI-compatible chat completion endpoint for the next
// assistant reply of a call transcript.
type ChatClient struct {
	client      openai.Client
	model       string
	temperature float64
	topP        float64
	maxTokens   int
	logger      *observability.Logger
}

func NewChatClient(cfg config.LLMConfig, logger *observability.Logger) (*ChatClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	options := []openaiOption.RequestOption{
		openaiOption.WithAPIKey(cfg.APIKey),
		openaiOption.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		options = append(options, openaiOption.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		options = append(options, openaiOption.WithRequestTimeout(cfg.Timeout))
	}

	return &ChatClient{
		client:      openai.NewClient(options...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}, nil
}

// Complete sends the whole transcript and returns the raw reply text.
func (c *ChatClient) Complete(ctx context.Context, transcript []callsession.Turn) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages:    toMessages(transcript),
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(c.temperature),
		TopP:        openai.Float(c.topP),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "chat completion request failed", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "model", Value: c.model},
		observability.Field{Key: "total_tokens", Value: resp.Usage.TotalTokens},
	)
	c.logger.Debug(ctx, "chat completion received")
	return resp.Choices[0].Message.Content, nil
}

func toMessages(transcript []callsession.Turn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(transcript))
	for _, turn := range transcript {
		switch turn.Role {
		case callsession.RoleSystem:
			messages = append(messages, openai.SystemMessage(turn.Content))
		case callsession.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	return messages
}
