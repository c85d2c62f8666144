package callsession

import (
	"call-relay/internal/observability"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// session holds one call's transcript. mu guards the fields and is only held
// for short reads and appends; turnMu serialises whole user turns, including
// the model round trip, so replies land in the order turns arrived.
type session struct {
	turnMu sync.Mutex

	mu           sync.RWMutex
	transcript   []Turn
	failed       bool
	inFlight     int
	createdAt    time.Time
	lastActivity time.Time
}

func (s *session) snapshot() ([]Turn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out, s.failed
}

func (s *session) append(turn Turn, now time.Time) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, turn)
	s.lastActivity = now
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *session) isFailed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failed
}

// beginTurn and endTurn bracket a user turn. A session with a turn in
// flight is never idle.
func (s *session) beginTurn(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight++
	s.lastActivity = now
}

func (s *session) endTurn(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	s.lastActivity = now
}

func (s *session) idleBefore(cutoff time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight == 0 && s.lastActivity.Before(cutoff)
}

// Registry is the process-wide call session store. Nothing is persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	// finished maps call id to the time it was marked finished.
	finished map[string]time.Time

	model      ChatModel
	logger     *observability.Logger
	autoFinish bool
	ttl        time.Duration
	now        func() time.Time
	newID      func() string
}

// Option configures the Registry.
type Option func(*Registry)

// WithAutoFinish marks a session finished as soon as a reply carries the sentinel.
func WithAutoFinish(enabled bool) Option {
	return func(r *Registry) {
		r.autoFinish = enabled
	}
}

// WithTTL sets how long an idle session survives CleanupIdle. Zero keeps sessions forever.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.ttl = ttl
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// withIDGenerator overrides call id generation in tests.
func withIDGenerator(newID func() string) Option {
	return func(r *Registry) {
		r.newID = newID
	}
}

// NewRegistry creates an empty registry that asks model for assistant replies.
func NewRegistry(model ChatModel, logger *observability.Logger, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*session),
		finished: make(map[string]time.Time),
		model:    model,
		logger:   logger,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateSession starts a transcript for a new call and returns its id.
func (r *Registry) CreateSession(ctx context.Context, task, openingLine string) string {
	callID := r.newID()
	now := r.now()

	s := &session{
		transcript:   NewTranscript(task, openingLine),
		createdAt:    now,
		lastActivity: now,
	}

	r.mu.Lock()
	r.sessions[callID] = s
	r.mu.Unlock()

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})
	r.logger.Info(ctx, "call session created")
	return callID
}

// GetStatus reports the state and transcript of a call. The finished mark
// wins over everything else, so a finished id that never existed comes back
// FINISHED with an empty transcript.
func (r *Registry) GetStatus(ctx context.Context, callID string) Snapshot {
	r.mu.RLock()
	_, finished := r.finished[callID]
	s, exists := r.sessions[callID]
	r.mu.RUnlock()

	snap := Snapshot{CallID: callID, Transcript: []Turn{}}
	var failed bool
	if exists {
		snap.Transcript, failed = s.snapshot()
	}

	switch {
	case finished:
		snap.Status = StatusFinished
	case exists && failed:
		snap.Status = StatusErrored
	case exists:
		snap.Status = StatusActive
	default:
		snap.Status = StatusNotFound
	}
	return snap
}

// MarkFinished adds callID to the finished set. It always succeeds, even for
// ids that were never created, and reports whether the id was newly marked.
func (r *Registry) MarkFinished(ctx context.Context, callID string) bool {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})

	r.mu.Lock()
	_, exists := r.sessions[callID]
	_, already := r.finished[callID]
	if !already {
		r.finished[callID] = r.now()
	}
	r.mu.Unlock()

	switch {
	case already:
		r.logger.Debug(ctx, "call session already finished")
	case !exists:
		r.logger.Warn(ctx, "finish requested for unknown call session")
	default:
		r.logger.Info(ctx, "call session marked finished")
	}
	return !already
}

// MarkFailed flags a session whose outbound call could not be placed.
func (r *Registry) MarkFailed(ctx context.Context, callID string) {
	s := r.lookup(callID)
	if s == nil {
		return
	}
	s.mu.Lock()
	s.failed = true
	s.mu.Unlock()

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})
	r.logger.Warn(ctx, "call session marked errored")
}

// AppendUserTurn records what the user said, asks the model for the next
// reply and records that too. The reply is checked for the sentinel token;
// the registry itself only moves to FINISHED when auto-finish is enabled.
func (r *Registry) AppendUserTurn(ctx context.Context, callID, userText string) (TurnResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})

	s := r.lookup(callID)
	if s == nil {
		return TurnResult{}, ErrSessionNotStarted
	}

	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	if s.isFailed() {
		return TurnResult{}, ErrSessionNotStarted
	}

	s.beginTurn(r.now())
	defer func() { s.endTurn(r.now()) }()

	history := s.append(Turn{Role: RoleUser, Content: normalizeUserText(userText)}, r.now())

	raw, err := r.model.Complete(ctx, history)
	if err != nil {
		r.logger.Error(ctx, "model invocation failed", err)
		return TurnResult{}, fmt.Errorf("%w: %w", ErrModelInvocation, err)
	}
	s.append(Turn{Role: RoleAssistant, Content: raw}, r.now())

	reply, finished := DetectTermination(raw)
	result := TurnResult{Reply: reply, Finished: finished}
	if finished {
		r.logger.Info(ctx, "sentinel token detected in model reply")
		if r.autoFinish {
			result.AutoFinished = r.MarkFinished(ctx, callID)
		}
	}

	return result, nil
}

// CleanupIdle drops sessions idle for longer than the TTL, together with
// their finished marks. Sessions with a turn in flight are kept. Finished marks for ids that were never created are
// dropped once they are older than the TTL. Returns the number of sessions
// removed.
func (r *Registry) CleanupIdle(ctx context.Context) int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for callID, s := range r.sessions {
		if s.idleBefore(cutoff) {
			delete(r.sessions, callID)
			delete(r.finished, callID)
			removed++
		}
	}
	for callID, markedAt := range r.finished {
		if _, exists := r.sessions[callID]; !exists && markedAt.Before(cutoff) {
			delete(r.finished, callID)
		}
	}
	return removed
}

// Stats returns current session counts. Finished marks for ids that were
// never created are not counted.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{Total: len(r.sessions)}
	for callID, s := range r.sessions {
		if _, done := r.finished[callID]; done {
			stats.Finished++
			continue
		}
		if !s.isFailed() {
			stats.Active++
		}
	}
	return stats
}

func (r *Registry) lookup(callID string) *session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[callID]
}
