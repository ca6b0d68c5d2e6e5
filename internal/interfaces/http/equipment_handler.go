package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slider460/weshow_backend/internal/application"
	"github.com/slider460/weshow_backend/internal/domain"
)

type EquipmentHandler struct {
	service *application.EquipmentService
}

func NewEquipmentHandler(service *application.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

// GetEquipment retorna el catálogo visible para el sitio público.
func (h *EquipmentHandler) GetEquipment(c *fiber.Ctx) error {
	return c.JSON(h.service.ActiveEquipment())
}

// GetCategories retorna las categorías del catálogo.
func (h *EquipmentHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(categories)
}

func (h *EquipmentHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.service.State())
}

func (h *EquipmentHandler) AddEquipment(c *fiber.Ctx) error {
	var draft domain.Equipment
	if err := c.BodyParser(&draft); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.service.AddEquipment(draft)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EquipmentHandler) UpdateEquipment(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch map[string]any
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(patch) == 0 {
		return badRequest(c, "Empty patch")
	}

	item, err := h.service.UpdateEquipment(id, patch)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(item)
}

func (h *EquipmentHandler) DeleteEquipment(c *fiber.Ctx) error {
	if err := h.service.DeleteEquipment(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *EquipmentHandler) ToggleEquipment(c *fiber.Ctx) error {
	item, err := h.service.ToggleEquipment(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(item)
}

func (h *EquipmentHandler) ReorderEquipment(c *fiber.Ctx) error {
	type Request struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.ReorderEquipment(req.From, req.To); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(h.service.State())
}

func (h *EquipmentHandler) RefreshEquipment(c *fiber.Ctx) error {
	if err := h.service.Refresh(); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(h.service.State())
}
