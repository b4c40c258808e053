package routes

import (
	"github.com/anjiri1684/faq_board/handlers"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func BoardRoutes(app *fiber.App, board *handlers.BoardHandler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/board", websocket.New(board.Serve))
}
