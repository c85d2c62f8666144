package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"call-relay/internal/apierrors"
	"call-relay/internal/callsession"
	"call-relay/internal/callsession/processor"
	"call-relay/internal/observability"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const StatusOK = "OK"

// CallService is the call orchestration used by the handlers. processor.CallProcessor implements it.
type CallService interface {
	StartCall(ctx context.Context, req processor.StartCallRequest) (string, error)
	GetCallStatus(ctx context.Context, callID string) (callsession.Snapshot, error)
	FinishCall(ctx context.Context, callID string)
	Chat(ctx context.Context, req processor.ChatRequest) (callsession.TurnResult, error)
}

type Handler struct {
	calls  CallService
	logger *observability.Logger
}

func New(calls CallService, logger *observability.Logger) Handler {
	return Handler{
		calls:  calls,
		logger: logger,
	}
}

// StartCallRequest represents the query of GET /start_call
type StartCallRequest struct {
	Phone       string `form:"phone"`
	Task        string `form:"task"`
	FirstReplic string `form:"first_replic"`
}

type StartCallResponse struct {
	Status string `json:"status"`
	CallID string `json:"call_id"`
}

// HandleStartCall handles GET /start_call
func (h *Handler) HandleStartCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req StartCallRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	callID, err := h.calls.StartCall(ctx, processor.StartCallRequest{
		Phone:       req.Phone,
		Task:        req.Task,
		FirstReplic: req.FirstReplic,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StartCallResponse{Status: StatusOK, CallID: callID})
}

// CallIDRequest represents a query carrying only call_id
type CallIDRequest struct {
	CallID string `form:"call_id"`
}

type CallStatusResponse struct {
	Status string             `json:"status"`
	CallID string             `json:"call_id"`
	Dialog []callsession.Turn `json:"dialog"`
}

// HandleGetCallStatus handles GET /get_call_status
func (h *Handler) HandleGetCallStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req CallIDRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	snap, err := h.calls.GetCallStatus(ctx, req.CallID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	dialog := snap.Transcript
	if dialog == nil {
		dialog = []callsession.Turn{}
	}
	c.JSON(http.StatusOK, CallStatusResponse{
		Status: string(snap.Status),
		CallID: snap.CallID,
		Dialog: dialog,
	})
}

type StatusResponse struct {
	Status string `json:"status"`
}

// HandleFinishCall handles GET /finish_call. It always answers OK.
func (h *Handler) HandleFinishCall(c *gin.Context) {
	ctx := c.Request.Context()

	h.calls.FinishCall(ctx, c.Query("call_id"))
	c.JSON(http.StatusOK, StatusResponse{Status: StatusOK})
}

// ChatRequest represents the query of GET /chat
type ChatRequest struct {
	User   string `form:"user"`
	CallID string `form:"call_id"`
	Task   string `form:"task"`
}

type ChatResponse struct {
	Status    string `json:"status"`
	Assistant string `json:"assistant"`
	Finished  bool   `json:"finished"`
	CallID    string `json:"call_id"`
}

// HandleChat handles GET /chat
func (h *Handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.calls.Chat(ctx, processor.ChatRequest{
		CallID: req.CallID,
		User:   req.User,
		Task:   req.Task,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Status:    StatusOK,
		Assistant: result.Reply,
		Finished:  result.Finished,
		CallID:    req.CallID,
	})
}
