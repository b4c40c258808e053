package routes

import (
	"github.com/anjiri1684/faq_board/handlers"
	"github.com/anjiri1684/faq_board/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, admin *handlers.AdminHandler, gate *middleware.AdminGate) {
	api := app.Group("/api/admin")

	// verify checks the password in the body, so it sits outside the gate
	api.Post("/verify", admin.Verify)

	protected := api.Group("", gate.Protected())
	protected.Get("/questions", admin.ListQuestions)
	protected.Put("/questions/:id", admin.AnswerQuestion)
	protected.Delete("/questions/:id", admin.DeleteQuestion)

	exports := protected.Group("/export")
	exports.Get("", admin.ExportJSON)
	exports.Get("/csv", admin.ExportCSV)
}
