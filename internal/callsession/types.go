package callsession

//go:generate go run go.uber.org/mock/mockgen@latest -source=types.go -destination=mocks_test.go -package=callsession

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrSessionNotStarted = errors.New("call not started")
	ErrModelInvocation   = errors.New("model invocation failed")
)

// Role tags a transcript entry with its speaker.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Status is the externally observable state of a call session.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusFinished Status = "FINISHED"
	StatusErrored  Status = "ERRORED"
	StatusNotFound Status = "NOT_FOUND"
)

// Turn is one role-tagged entry of a transcript. It serializes as a
// two-element JSON array: ["role", "content"].
type Turn struct {
	Role    Role
	Content string
}

func (t Turn) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{string(t.Role), t.Content})
}

// Snapshot is a point-in-time view of one session.
type Snapshot struct {
	CallID     string
	Status     Status
	Transcript []Turn
}

// TurnResult is what the caller gets back from one user turn.
type TurnResult struct {
	Reply    string
	Finished bool
	// AutoFinished is set when this turn moved the session to FINISHED.
	AutoFinished bool
}

// OutboundCall is what a telephony provider needs to place a call.
type OutboundCall struct {
	CallID      string
	Phone       string
	Task        string
	FirstReplic string
}

// ChatModel produces the next assistant reply for a role-tagged transcript.
type ChatModel interface {
	Complete(ctx context.Context, transcript []Turn) (string, error)
}

// Stats counts sessions by observable state.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Finished int `json:"finished"`
}
