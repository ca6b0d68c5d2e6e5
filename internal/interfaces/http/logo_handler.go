package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slider460/weshow_backend/internal/application"
)

type LogoHandler struct {
	service *application.LogoService
}

func NewLogoHandler(service *application.LogoService) *LogoHandler {
	return &LogoHandler{service: service}
}

// GetLogos retorna los logos visibles para el sitio público.
func (h *LogoHandler) GetLogos(c *fiber.Ctx) error {
	return c.JSON(h.service.ActiveLogos())
}

// GetState retorna el estado completo de la colección para el panel.
func (h *LogoHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.service.State())
}

func (h *LogoHandler) AddLogo(c *fiber.Ctx) error {
	type Request struct {
		Name       string `json:"name"`
		ImageURL   string `json:"image_url"`
		WebsiteURL string `json:"website_url"`
		SortOrder  int    `json:"sort_order"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	logo, err := h.service.AddLogo(req.Name, req.ImageURL, req.WebsiteURL, req.SortOrder)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(logo)
}

func (h *LogoHandler) UpdateLogo(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch map[string]any
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(patch) == 0 {
		return badRequest(c, "Empty patch")
	}

	logo, err := h.service.UpdateLogo(id, patch)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(logo)
}

func (h *LogoHandler) DeleteLogo(c *fiber.Ctx) error {
	if err := h.service.DeleteLogo(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ToggleLogo invierte la visibilidad del logo (click en el ícono de ojo).
func (h *LogoHandler) ToggleLogo(c *fiber.Ctx) error {
	logo, err := h.service.ToggleLogo(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(logo)
}

// ReorderLogos mueve un logo de una posición a otra (drag and drop).
func (h *LogoHandler) ReorderLogos(c *fiber.Ctx) error {
	type Request struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.ReorderLogos(req.From, req.To); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(h.service.State())
}

// RefreshLogos recarga la colección desde el almacén.
func (h *LogoHandler) RefreshLogos(c *fiber.Ctx) error {
	if err := h.service.Refresh(); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(h.service.State())
}
