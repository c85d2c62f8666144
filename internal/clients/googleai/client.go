package googleai

import (
	"call-relay/internal/callsession"
	"call-relay/internal/config"
	"call-relay/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("gemini returned no text")

// GeminiClient produces assistant replies with a Gemini chat session.
type GeminiClient struct {
	client *genai.Client
	cfg    config.LLMConfig
	logger *observability.Logger
}

// NewGeminiClient creates a Gemini client. Close must be called on shutdown.
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig, logger *observability.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	return &GeminiClient{client: client, cfg: cfg, logger: logger}, nil
}

// Complete replays the transcript as chat history and sends the last user turn.
func (g *GeminiClient) Complete(ctx context.Context, transcript []callsession.Turn) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	system, history, prompt := splitTranscript(transcript)

	model := g.client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(float32(g.cfg.Temperature))
	model.SetTopP(float32(g.cfg.TopP))
	if g.cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(g.cfg.MaxTokens))
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	chat := model.StartChat()
	chat.History = history
	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Error(ctx, "Gemini request failed", err)
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	reply := responseText(resp)
	if reply == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// splitTranscript maps the transcript onto Gemini's shape: system turns become
// the system instruction, the final user turn is the prompt and everything in
// between is history. Assistant turns use the "model" role.
func splitTranscript(transcript []callsession.Turn) (string, []*genai.Content, string) {
	var system []string
	var history []*genai.Content
	for _, turn := range transcript {
		if turn.Role == callsession.RoleSystem {
			system = append(system, turn.Content)
			continue
		}
		role := "user"
		if turn.Role == callsession.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	var prompt string
	if n := len(history); n > 0 && history[n-1].Role == "user" {
		if text, ok := history[n-1].Parts[0].(genai.Text); ok {
			prompt = string(text)
		}
		history = history[:n-1]
	}
	return strings.Join(system, "\n"), history, prompt
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
