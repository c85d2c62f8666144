package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"call-relay/internal/apierrors"
	"call-relay/internal/callsession"
	"call-relay/internal/callsession/processor"
	"call-relay/internal/clients/twilio"
	"call-relay/internal/observability"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApologyLine is said before hanging up when no reply could be produced.
const ApologyLine = "Извините, произошла техническая ошибка. Мы перезвоним вам позже."

// terminalStatuses are Twilio call statuses after which the call is over.
var terminalStatuses = map[string]bool{
	"completed": true,
	"failed":    true,
	"busy":      true,
	"no-answer": true,
	"canceled":  true,
}

// Conversation is the part of call orchestration the voice webhooks drive.
type Conversation interface {
	Chat(ctx context.Context, req processor.ChatRequest) (callsession.TurnResult, error)
	FinishCall(ctx context.Context, callID string)
}

type Handler struct {
	conversation Conversation
	dialogue     twilio.Dialogue
	logger       *observability.Logger
}

func New(conversation Conversation, dialogue twilio.Dialogue, logger *observability.Logger) Handler {
	return Handler{
		conversation: conversation,
		dialogue:     dialogue,
		logger:       logger,
	}
}

// HandleGather handles POST /twilio/gather. Twilio posts the recognised
// speech here; the reply goes back as TwiML that either keeps gathering or
// says goodbye and hangs up.
func (h *Handler) HandleGather(c *gin.Context) {
	callID := c.Query("call_id")
	speech := c.PostForm("SpeechResult")
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "call_id", Value: callID},
		observability.Field{Key: "twilio_call_sid", Value: c.PostForm("CallSid")},
	)

	result, err := h.conversation.Chat(ctx, processor.ChatRequest{CallID: callID, User: speech})
	var doc string
	switch {
	case errors.Is(err, callsession.ErrSessionNotStarted):
		h.logger.Warn(ctx, "gather for unknown call, hanging up")
		doc, err = h.dialogue.Goodbye("")
	case err != nil:
		h.logger.Error(ctx, "failed to produce reply, hanging up", err)
		doc, err = h.dialogue.Goodbye(ApologyLine)
	case result.Finished:
		h.conversation.FinishCall(ctx, callID)
		doc, err = h.dialogue.Goodbye(result.Reply)
	default:
		doc, err = h.dialogue.Prompt(callID, result.Reply)
	}
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, doc)
}

// HandleStatus handles POST /twilio/status. A terminal status finishes the call.
func (h *Handler) HandleStatus(c *gin.Context) {
	callID := c.Query("call_id")
	status := c.PostForm("CallStatus")
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "call_id", Value: callID},
		observability.Field{Key: "call_status", Value: status},
	)

	h.logger.Info(ctx, "twilio call status received")
	if terminalStatuses[status] {
		h.conversation.FinishCall(ctx, callID)
	}
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}
