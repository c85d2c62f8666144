package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"call-relay/internal/callsession"
	"context"
)

// SessionRegistry is the call session state used by CallProcessor
type SessionRegistry interface {
	CreateSession(ctx context.Context, task, openingLine string) string
	GetStatus(ctx context.Context, callID string) callsession.Snapshot
	MarkFinished(ctx context.Context, callID string) bool
	MarkFailed(ctx context.Context, callID string)
	AppendUserTurn(ctx context.Context, callID, userText string) (callsession.TurnResult, error)
}

// TelephonyProvider places outbound calls
type TelephonyProvider interface {
	StartCall(ctx context.Context, call callsession.OutboundCall) error
}

// EventPublisher publishes call lifecycle events
type EventPublisher interface {
	PublishCallStarted(ctx context.Context, callID, phone string) error
	PublishCallFailed(ctx context.Context, callID string, cause error) error
	PublishCallTurn(ctx context.Context, callID string, finished bool) error
	PublishCallFinished(ctx context.Context, callID string) error
}
