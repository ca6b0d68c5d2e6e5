package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slider460/weshow_backend/internal/application"
)

type EstimateHandler struct {
	service *application.EstimateService
	limiter *application.RateLimiter
}

func NewEstimateHandler(service *application.EstimateService, limiter *application.RateLimiter) *EstimateHandler {
	return &EstimateHandler{service: service, limiter: limiter}
}

// CreateEstimate recibe el carrito del sitio público y registra la
// cotización.
func (h *EstimateHandler) CreateEstimate(c *fiber.Ctx) error {
	if h.limiter != nil {
		if ok, err := h.limiter.Allow(c.IP()); !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		}
	}

	var req application.EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	estimate, err := h.service.SubmitEstimate(req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(estimate)
}

// ListEstimates retorna todas las cotizaciones para el panel.
func (h *EstimateHandler) ListEstimates(c *fiber.Ctx) error {
	estimates, err := h.service.GetAllEstimates()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(estimates)
}

// UpdateEstimateStatus cambia el estado de una cotización.
func (h *EstimateHandler) UpdateEstimateStatus(c *fiber.Ctx) error {
	type Request struct {
		Status string `json:"status"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	estimate, err := h.service.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(estimate)
}
