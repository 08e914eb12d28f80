package handlers

import (
	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type OfferHandler struct {
	service *services.OfferService
}

func NewOfferHandler(service *services.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

func (h *OfferHandler) Create(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request ID"})
	}

	var req dto.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	offer, err := h.service.Create(uint(requestID), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(offer)
}

func (h *OfferHandler) ListForRequest(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request ID"})
	}

	offers, err := h.service.ListForRequest(uint(requestID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(offers)
}

// UpdateStatus overwrites the offer status. The new status comes in as a
// query parameter: PATCH /offers/:id?status=accepted
func (h *OfferHandler) UpdateStatus(c *fiber.Ctx) error {
	offerID, err := c.ParamsInt("id")
	if err != nil || offerID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid offer ID"})
	}

	status := c.Query("status")

	offer, err := h.service.UpdateStatus(uint(offerID), status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(offer)
}
