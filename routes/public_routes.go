package routes

import (
	"github.com/anjiri1684/faq_board/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App, questions *handlers.QuestionHandler) {
	api := app.Group("/api")

	api.Get("/questions", questions.ListAnswered)
	api.Get("/questions/all", questions.ListAll)
	api.Post("/questions", questions.Submit)
}
