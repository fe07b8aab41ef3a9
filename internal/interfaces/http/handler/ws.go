package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nutritrack/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// SummaryStream hands upgraded connections to the push hub
type SummaryStream interface {
	Upgrader() *websocket.Upgrader
	Serve(conn *websocket.Conn, userID uuid.UUID)
}

// WebSocketHandler upgrades authenticated requests to a summary push channel
type WebSocketHandler struct {
	BaseHandler
	stream SummaryStream
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(stream SummaryStream) *WebSocketHandler {
	return &WebSocketHandler{stream: stream}
}

// Connect godoc
// @Summary      Live summary updates
// @Description  Upgrades to a websocket. Browsers pass the access token in the token query parameter.
// @Tags         realtime
// @Param        token query string false "Access token"
// @Success      101
// @Failure      401 {object} ErrorResponse
// @Router       /ws [get]
func (h *WebSocketHandler) Connect(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	conn, err := h.stream.Upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.L(c.Request.Context()).Debug("websocket upgrade failed", zap.Error(err))
		c.Abort()
		return
	}
	h.stream.Serve(conn, userID)
}
