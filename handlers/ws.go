package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024

	// Keep-Alive configuration for cloud hosting
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		log.Printf("🔌 Client subscribed to expense updates: %s", s.Request.RemoteAddr)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("🔌 Client unsubscribed from expense updates: %s", s.Request.RemoteAddr)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request to a WebSocket subscription.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate signals every connected client that the expense set
// changed, so open UIs can re-fetch the current filter.
func (h *WSHandler) BroadcastUpdate(updateType string) {
	msg := []byte(`{"type": "` + updateType + `"}`)

	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("⚠️ Error broadcasting %s: %v", updateType, err)
	}
}
