package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/anjiri1684/faq_board/export"
	"github.com/anjiri1684/faq_board/services"
	"github.com/gofiber/fiber/v2"
)

type Authorizer interface {
	Authorize(supplied string) bool
}

type AdminHandler struct {
	service QuestionService
	gate    Authorizer
	now     func() time.Time
}

func NewAdminHandler(service QuestionService, gate Authorizer) *AdminHandler {
	return &AdminHandler{service: service, gate: gate, now: time.Now}
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type VerifyRequest struct {
	Password string `json:"password"`
}

func (h *AdminHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.service.FullList(c.UserContext())
	if err != nil {
		log.Printf("Error fetching admin questions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgFetchFailed})
	}
	return c.JSON(questions)
}

func (h *AdminHandler) AnswerQuestion(c *fiber.Ctx) error {
	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgCannotParse})
	}

	id := c.Params("id")
	if err := h.service.Answer(c.UserContext(), id, req.Answer); err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": requiredMessage(ve.Field)})
		}
		log.Printf("Error answering question %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgAnswerFailed})
	}

	return c.JSON(fiber.Map{"message": msgAnswered})
}

func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Remove(c.UserContext(), id); err != nil {
		log.Printf("Error deleting question %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgDeleteFailed})
	}
	return c.JSON(fiber.Map{"message": msgDeleted})
}

func (h *AdminHandler) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgCannotParse})
	}

	if !h.gate.Authorize(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"valid": false})
	}
	return c.JSON(fiber.Map{"valid": true})
}

func (h *AdminHandler) ExportJSON(c *fiber.Ctx) error {
	questions, err := h.service.FullList(c.UserContext())
	if err != nil {
		log.Printf("Error exporting data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgExportFailed})
	}

	now := h.now()
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+export.Filename("json", now))
	return c.JSON(export.ToJSON(questions, now))
}

func (h *AdminHandler) ExportCSV(c *fiber.Ctx) error {
	questions, err := h.service.FullList(c.UserContext())
	if err != nil {
		log.Printf("Error exporting CSV: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgExportCSVFailed})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+export.Filename("csv", h.now()))
	return c.Send(export.ToCSV(questions))
}
