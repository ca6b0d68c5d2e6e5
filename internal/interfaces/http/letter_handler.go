package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/slider460/weshow_backend/internal/application"
)

type LetterHandler struct {
	service *application.LetterService
}

func NewLetterHandler(service *application.LetterService) *LetterHandler {
	return &LetterHandler{service: service}
}

// GetLetters retorna las cartas visibles para el sitio público.
func (h *LetterHandler) GetLetters(c *fiber.Ctx) error {
	return c.JSON(h.service.ActiveLetters())
}

func (h *LetterHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.service.State())
}

func (h *LetterHandler) AddLetter(c *fiber.Ctx) error {
	type Request struct {
		Title      string `json:"title"`
		Issuer     string `json:"issuer"`
		FileURL    string `json:"file_url"`
		PreviewURL string `json:"preview_url"`
		IssuedAt   string `json:"issued_at"`
		SortOrder  int    `json:"sort_order"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var issuedAt *time.Time
	if req.IssuedAt != "" {
		t, err := time.Parse("2006-01-02", req.IssuedAt)
		if err != nil {
			return badRequest(c, "Invalid issued_at date, expected YYYY-MM-DD")
		}
		issuedAt = &t
	}

	letter, err := h.service.AddLetter(req.Title, req.Issuer, req.FileURL, req.PreviewURL, issuedAt, req.SortOrder)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(letter)
}

func (h *LetterHandler) UpdateLetter(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch map[string]any
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(patch) == 0 {
		return badRequest(c, "Empty patch")
	}

	letter, err := h.service.UpdateLetter(id, patch)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(letter)
}

func (h *LetterHandler) DeleteLetter(c *fiber.Ctx) error {
	if err := h.service.DeleteLetter(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *LetterHandler) ToggleLetter(c *fiber.Ctx) error {
	letter, err := h.service.ToggleLetter(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(letter)
}

func (h *LetterHandler) ReorderLetters(c *fiber.Ctx) error {
	type Request struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.ReorderLetters(req.From, req.To); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(h.service.State())
}

func (h *LetterHandler) RefreshLetters(c *fiber.Ctx) error {
	if err := h.service.Refresh(); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(h.service.State())
}
