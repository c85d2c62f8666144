package events

//go:generate go run go.uber.org/mock/mockgen@latest -source=publisher.go -destination=mocks_test.go -package=events

import (
	"call-relay/internal/clients/kafka"
	"call-relay/internal/observability"
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeCallStarted  = "call.started"
	TypeCallFailed   = "call.failed"
	TypeCallTurn     = "call.turn"
	TypeCallFinished = "call.finished"
)

// EventWriter delivers a serialized event. *kafka.Producer implements it.
type EventWriter interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher publishes call lifecycle events. With no writer the events are
// only logged.
type Publisher struct {
	writer EventWriter
	logger *observability.Logger
	now    func() time.Time
}

// NewPublisher creates a new event publisher. writer may be nil.
func NewPublisher(writer EventWriter, logger *observability.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

// PublishCallStarted publishes a call.started event
func (p *Publisher) PublishCallStarted(ctx context.Context, callID, phone string) error {
	return p.publish(ctx, TypeCallStarted, callID, map[string]any{
		"phone": phone,
	})
}

// PublishCallFailed publishes a call.failed event
func (p *Publisher) PublishCallFailed(ctx context.Context, callID string, cause error) error {
	return p.publish(ctx, TypeCallFailed, callID, map[string]any{
		"error": cause.Error(),
	})
}

// PublishCallTurn publishes a call.turn event
func (p *Publisher) PublishCallTurn(ctx context.Context, callID string, finished bool) error {
	return p.publish(ctx, TypeCallTurn, callID, map[string]any{
		"finished": finished,
	})
}

// PublishCallFinished publishes a call.finished event
func (p *Publisher) PublishCallFinished(ctx context.Context, callID string) error {
	return p.publish(ctx, TypeCallFinished, callID, nil)
}

func (p *Publisher) publish(ctx context.Context, eventType, callID string, data map[string]any) error {
	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		CallID:    callID,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	if p.writer == nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: event.Type},
			observability.Field{Key: "event_id", Value: event.ID},
			observability.Field{Key: "call_id", Value: callID},
		)
		p.logger.Info(ctx, "call event")
		return nil
	}
	return p.writer.PublishEvent(ctx, event)
}
