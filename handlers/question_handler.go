package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/anjiri1684/faq_board/models"
	"github.com/anjiri1684/faq_board/services"
	"github.com/gofiber/fiber/v2"
)

type QuestionService interface {
	Submit(ctx context.Context, sub services.Submission) (string, error)
	Answer(ctx context.Context, id, answer string) error
	Remove(ctx context.Context, id string) error
	PublicList(ctx context.Context) ([]models.Question, error)
	FullList(ctx context.Context) ([]models.Question, error)
}

type QuestionHandler struct {
	service QuestionService
}

func NewQuestionHandler(service QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

func (h *QuestionHandler) ListAnswered(c *fiber.Ctx) error {
	questions, err := h.service.PublicList(c.UserContext())
	if err != nil {
		log.Printf("Error fetching questions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgFetchFailed})
	}
	return c.JSON(questions)
}

func (h *QuestionHandler) ListAll(c *fiber.Ctx) error {
	questions, err := h.service.FullList(c.UserContext())
	if err != nil {
		log.Printf("Error fetching all questions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgFetchFailed})
	}
	return c.JSON(questions)
}

func (h *QuestionHandler) Submit(c *fiber.Ctx) error {
	var req services.Submission
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgCannotParse})
	}

	id, err := h.service.Submit(c.UserContext(), req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": requiredMessage(ve.Field)})
		}
		log.Printf("Error submitting question: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgSubmitFailed})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": msgSubmitted})
}
