package handlers

import (
	"github.com/anjiri1684/faq_board/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
)

type BoardHandler struct {
	hub *websocket.Hub
}

func NewBoardHandler(hub *websocket.Hub) *BoardHandler {
	return &BoardHandler{hub: hub}
}

// Serve keeps the socket registered until the client goes away. Incoming
// frames are read only to notice the disconnect.
func (h *BoardHandler) Serve(c *websocketcontrib.Conn) {
	client := h.hub.Register(c)
	if client == nil {
		c.Close()
		return
	}
	defer h.hub.Unregister(client)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
