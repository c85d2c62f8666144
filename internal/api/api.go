package api

import (
	"call-relay/internal/callsession"
	callHandler "call-relay/internal/callsession/handler"
	voiceCallHandler "call-relay/internal/voicecall/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionStats reports registry counters for the health check
type SessionStats interface {
	Stats() callsession.Stats
}

type API struct {
	router           *gin.RouterGroup
	callHandler      callHandler.Handler
	voiceCallHandler *voiceCallHandler.Handler
	sessions         SessionStats
}

// New wires the routes. voiceCallHandler is nil when Twilio is not the telephony provider.
func New(router *gin.RouterGroup, callHandler callHandler.Handler, voiceCallHandler *voiceCallHandler.Handler, sessions SessionStats) API {
	return API{
		router:           router,
		callHandler:      callHandler,
		voiceCallHandler: voiceCallHandler,
		sessions:         sessions,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	a.router.GET("/start_call", a.callHandler.HandleStartCall)
	a.router.GET("/get_call_status", a.callHandler.HandleGetCallStatus)
	a.router.GET("/finish_call", a.callHandler.HandleFinishCall)
	a.router.GET("/chat", a.callHandler.HandleChat)

	if a.voiceCallHandler != nil {
		twilioGroup := a.router.Group("/twilio")
		{
			twilioGroup.POST("/gather", a.voiceCallHandler.HandleGather)
			twilioGroup.POST("/status", a.voiceCallHandler.HandleStatus)
		}
	}
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Sessions callsession.Stats `json:"sessions"`
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:   callHandler.StatusOK,
			Sessions: a.sessions.Stats(),
		})
	})
}
