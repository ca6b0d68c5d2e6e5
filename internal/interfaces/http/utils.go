package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/slider460/weshow_backend/internal/application"
	"github.com/slider460/weshow_backend/internal/rowstore"
)

// errorJSON responde un error del almacén con el código HTTP que le
// corresponde. Cuando la tabla no existe se agrega una pista para el panel
// de administración.
func errorJSON(c *fiber.Ctx, err error) error {
	resp := fiber.Map{"error": err.Error()}
	if rowstore.IsMissingRelation(err) {
		resp["hint"] = "the table does not exist in the row store yet; create it and retry"
	}
	return c.Status(statusForError(err)).JSON(resp)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, application.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, rowstore.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, rowstore.ErrPermissionDenied):
		return fiber.StatusForbidden
	}

	// Errores de validación del propio almacén (ej. columna NOT NULL)
	// conservan su código 4xx.
	var serr *rowstore.StoreError
	if errors.As(err, &serr) && serr.StatusCode >= 400 && serr.StatusCode < 500 {
		return serr.StatusCode
	}
	return fiber.StatusInternalServerError
}

// badRequest responde un error de validación o de cuerpo inválido.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
