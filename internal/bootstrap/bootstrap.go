package bootstrap

import (
	"call-relay/internal/apierrors"
	"call-relay/internal/callsession"
	"call-relay/internal/config"
	"call-relay/internal/events"
	"call-relay/internal/observability"
	"context"
	"fmt"

	callHandler "call-relay/internal/callsession/handler"
	callProcessor "call-relay/internal/callsession/processor"
	"call-relay/internal/clients/googleai"
	kafkaClient "call-relay/internal/clients/kafka"
	openaiClient "call-relay/internal/clients/openai"
	twilioClient "call-relay/internal/clients/twilio"
	"call-relay/internal/clients/voximplant"
	voiceCallHandler "call-relay/internal/voicecall/handler"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Logger   *observability.Logger
	Registry *callsession.Registry

	// Handlers
	CallHandler callHandler.Handler
	// VoiceCallHandler is nil unless Twilio places the calls
	VoiceCallHandler *voiceCallHandler.Handler

	// Background workers
	Janitor *callsession.Janitor

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	GeminiClient  *googleai.GeminiClient
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}
	apierrors.SetLogger(logger)

	// Initialize chat model
	var model callsession.ChatModel
	switch cfg.LLM.Provider {
	case config.LLMGemini:
		gemini, err := googleai.NewGeminiClient(ctx, cfg.LLM, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		deps.GeminiClient = gemini
		model = gemini
	case config.LLMOpenAI:
		chat, err := openaiClient.NewChatClient(cfg.LLM, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		model = chat
	default:
		return nil, fmt.Errorf("llm provider %q: %w", cfg.LLM.Provider, config.ErrUnknownProvider)
	}

	// Initialize session registry
	deps.Registry = callsession.NewRegistry(model, logger,
		callsession.WithAutoFinish(cfg.Sessions.AutoFinish),
		callsession.WithTTL(cfg.Sessions.TTL),
	)
	if cfg.Sessions.TTL > 0 {
		deps.Janitor = callsession.NewJanitor(deps.Registry, logger, cfg.Sessions.CleanupInterval)
	}

	// Initialize telephony provider
	var telephony callProcessor.TelephonyProvider
	var twilioProvider *twilioClient.Provider
	switch cfg.Telephony.Provider {
	case config.TelephonyTwilio:
		twilioProvider = twilioClient.NewProvider(cfg.Telephony.Twilio, cfg.Server.PublicBaseURL, logger)
		telephony = twilioProvider
	case config.TelephonyVoximplant:
		telephony = voximplant.NewClient(cfg.Telephony.Voximplant, logger)
	default:
		return nil, fmt.Errorf("telephony provider %q: %w", cfg.Telephony.Provider, config.ErrUnknownProvider)
	}

	// Initialize call event publisher; without brokers events are only logged
	var eventWriter events.EventWriter
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		eventWriter = deps.KafkaProducer
	}
	publisher := events.NewPublisher(eventWriter, logger)

	// Initialize call processor and handlers
	callProc := callProcessor.New(deps.Registry, telephony, publisher, logger)
	deps.CallHandler = callHandler.New(&callProc, logger)

	if twilioProvider != nil {
		voiceHandler := voiceCallHandler.New(&callProc, twilioProvider.Dialogue(), logger)
		deps.VoiceCallHandler = &voiceHandler
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.GeminiClient != nil {
		d.GeminiClient.Close()
	}
}
