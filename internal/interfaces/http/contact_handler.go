package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slider460/weshow_backend/internal/application"
)

type ContactHandler struct {
	service *application.ContactService
	limiter *application.RateLimiter
}

func NewContactHandler(service *application.ContactService, limiter *application.RateLimiter) *ContactHandler {
	return &ContactHandler{service: service, limiter: limiter}
}

// Create registra un mensaje del formulario de contacto.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	if h.limiter != nil {
		if ok, err := h.limiter.Allow(c.IP()); !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		}
	}

	type Request struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	msg, err := h.service.Create(req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// List retorna los mensajes para el panel.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	messages, err := h.service.List()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(messages)
}

// UpdateStatus cambia el estado de un mensaje.
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	type Request struct {
		Status string `json:"status"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.UpdateStatus(c.Params("id"), req.Status); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Contact status updated"})
}
