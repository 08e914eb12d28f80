package handlers

import (
	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) Create(c *fiber.Ctx) error {
	offerID, err := c.ParamsInt("id")
	if err != nil || offerID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid offer ID"})
	}

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	msg, err := h.service.Create(uint(offerID), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(msg)
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	offerID, err := c.ParamsInt("id")
	if err != nil || offerID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid offer ID"})
	}

	msgs, err := h.service.List(uint(offerID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(msgs)
}
