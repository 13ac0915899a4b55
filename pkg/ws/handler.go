package ws

import (
	"github.com/gin-gonic/gin"

	"autoluxe/pkg/logger"
)

type Handler struct {
	hub *Hub
}

func NewHandler(log *logger.Logger) *Handler {
	hub := NewHub(log)
	go hub.Run()

	return &Handler{hub: hub}
}

func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := newClient(h.hub, conn)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (h *Handler) GetHub() *Hub {
	return h.hub
}
