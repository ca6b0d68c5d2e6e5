package http

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	services "github.com/slider460/weshow_backend/internal/service"
)

type S3Handler struct {
	service *services.S3Service
}

func NewS3Handler(service *services.S3Service) *S3Handler {
	return &S3Handler{
		service: service,
	}
}

// HandleUploadFile sube un archivo del panel de administración al bucket y
// retorna la URL pública. La carpeta destino (logos, letters, equipment)
// viene como campo del formulario.
func (h *S3Handler) HandleUploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("Failed to retrieve file %v", err)
		return badRequest(c, fmt.Sprintf("Error reading uploaded file: %v", err))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		return badRequest(c, "Missing upload folder")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open file %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Error opening uploaded file: %v", err),
		})
	}
	defer file.Close()

	url, err := h.service.UploadFile(file, fileHeader, folder)
	if err != nil {
		log.Printf("Failed to upload file %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Error uploading file: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"url": url,
	})
}
