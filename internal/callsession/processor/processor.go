package processor

import (
	"call-relay/internal/callsession"
	"call-relay/internal/observability"
	"context"
	"errors"
	"fmt"
)

var (
	ErrPhoneRequired    = errors.New("phone number is required")
	ErrTaskRequired     = errors.New("task is required")
	ErrCallIDRequired   = errors.New("call ID is required")
	ErrCallNotFound     = errors.New("call not found")
	ErrTelephonyFailed  = errors.New("failed to start call")
	ErrModelUnavailable = errors.New("failed to get assistant reply")
)

type CallProcessor struct {
	registry  SessionRegistry
	telephony TelephonyProvider
	events    EventPublisher
	logger    *observability.Logger
}

func New(registry SessionRegistry, telephony TelephonyProvider, events EventPublisher, logger *observability.Logger) CallProcessor {
	return CallProcessor{
		registry:  registry,
		telephony: telephony,
		events:    events,
		logger:    logger,
	}
}

// StartCallRequest holds the parameters of an outbound call
type StartCallRequest struct {
	Phone       string
	Task        string
	FirstReplic string
}

// ChatRequest holds one recognised user utterance
type ChatRequest struct {
	CallID string
	User   string
	Task   string
}

// StartCall creates a session and asks the telephony provider to dial. The
// session is created first so the provider can call back into /chat right away.
func (p *CallProcessor) StartCall(ctx context.Context, req StartCallRequest) (string, error) {
	if req.Phone == "" {
		return "", ErrPhoneRequired
	}
	if req.Task == "" {
		return "", ErrTaskRequired
	}
	if req.FirstReplic == "" {
		req.FirstReplic = callsession.DefaultOpeningLine
	}

	callID := p.registry.CreateSession(ctx, req.Task, req.FirstReplic)
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})

	err := p.telephony.StartCall(ctx, callsession.OutboundCall{
		CallID:      callID,
		Phone:       req.Phone,
		Task:        req.Task,
		FirstReplic: req.FirstReplic,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to start call", err)
		p.registry.MarkFailed(ctx, callID)
		if pubErr := p.events.PublishCallFailed(ctx, callID, err); pubErr != nil {
			p.logger.Error(ctx, "failed to publish call.failed event", pubErr)
		}
		return "", fmt.Errorf("%w: %w", ErrTelephonyFailed, err)
	}

	p.logger.Info(ctx, "call started")
	if pubErr := p.events.PublishCallStarted(ctx, callID, req.Phone); pubErr != nil {
		p.logger.Error(ctx, "failed to publish call.started event", pubErr)
	}
	return callID, nil
}

// GetCallStatus returns the status and transcript of a call
func (p *CallProcessor) GetCallStatus(ctx context.Context, callID string) (callsession.Snapshot, error) {
	if callID == "" {
		return callsession.Snapshot{}, ErrCallIDRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})

	snap := p.registry.GetStatus(ctx, callID)
	if snap.Status == callsession.StatusNotFound {
		p.logger.Warn(ctx, "call not found")
		return callsession.Snapshot{}, ErrCallNotFound
	}
	return snap, nil
}

// FinishCall marks a call finished. It never fails; an empty id is ignored.
// call.finished is published once per call id.
func (p *CallProcessor) FinishCall(ctx context.Context, callID string) {
	if callID == "" {
		p.logger.Warn(ctx, "finish requested without call ID")
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})

	if !p.registry.MarkFinished(ctx, callID) {
		return
	}
	if pubErr := p.events.PublishCallFinished(ctx, callID); pubErr != nil {
		p.logger.Error(ctx, "failed to publish call.finished event", pubErr)
	}
}

// Chat forwards one user utterance to the model and returns its reply with
// the sentinel stripped.
func (p *CallProcessor) Chat(ctx context.Context, req ChatRequest) (callsession.TurnResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: req.CallID},
		observability.Field{Key: "task", Value: req.Task},
	)

	result, err := p.registry.AppendUserTurn(ctx, req.CallID, req.User)
	if err != nil {
		switch {
		case errors.Is(err, callsession.ErrSessionNotStarted):
			p.logger.Warn(ctx, "chat for a call that was not started")
			return callsession.TurnResult{}, err
		case errors.Is(err, callsession.ErrModelInvocation):
			return callsession.TurnResult{}, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
		default:
			p.logger.Error(ctx, "failed to append user turn", err)
			return callsession.TurnResult{}, err
		}
	}

	if pubErr := p.events.PublishCallTurn(ctx, req.CallID, result.Finished); pubErr != nil {
		p.logger.Error(ctx, "failed to publish call.turn event", pubErr)
	}
	if result.AutoFinished {
		if pubErr := p.events.PublishCallFinished(ctx, req.CallID); pubErr != nil {
			p.logger.Error(ctx, "failed to publish call.finished event", pubErr)
		}
	}
	return result, nil
}
