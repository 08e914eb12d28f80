package handlers

import (
	"strconv"

	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	service *services.RequestService
}

func NewRequestHandler(service *services.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBuyerRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request"})
	}

	created, err := h.service.Create(req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(created)
}

// List returns active requests, optionally filtered by exact-match city and
// district and by a max_budget ceiling.
func (h *RequestHandler) List(c *fiber.Ctx) error {
	city := c.Query("city")
	district := c.Query("district")

	var maxBudget float64
	if raw := c.Query("max_budget"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid max_budget"})
		}
		maxBudget = v
	}

	requests, err := h.service.ListActive(city, district, maxBudget)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(requests)
}

func (h *RequestHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request ID"})
	}

	req, err := h.service.Get(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(req)
}
