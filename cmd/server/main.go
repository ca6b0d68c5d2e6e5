package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/slider460/weshow_backend/internal/application"
	"github.com/slider460/weshow_backend/internal/config"
	"github.com/slider460/weshow_backend/internal/email"
	"github.com/slider460/weshow_backend/internal/infrastructure/repository"
	handlers "github.com/slider460/weshow_backend/internal/interfaces/http"
	"github.com/slider460/weshow_backend/internal/rowstore"
	"github.com/slider460/weshow_backend/internal/scheduler"
	services "github.com/slider460/weshow_backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	store := rowstore.NewClient(cfg.RowStoreURL, cfg.RowStoreKey, cfg.RowStoreTimeout)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // Continuar sin email
	}

	// Logos
	logoRepo := repository.NewLogoRepository(store)
	logoService := application.NewLogoService(logoRepo)
	logoHandler := handlers.NewLogoHandler(logoService)

	// Cartas / certificados
	letterRepo := repository.NewLetterRepository(store)
	letterService := application.NewLetterService(letterRepo)
	letterHandler := handlers.NewLetterHandler(letterService)

	// Catálogo de equipos
	equipmentRepo := repository.NewEquipmentRepository(store)
	equipmentService := application.NewEquipmentService(equipmentRepo)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)

	// Rate limiter para los formularios públicos
	publicLimiter := application.NewRateLimiter(1*time.Minute, 5)

	// Cotizaciones
	estimateRepo := repository.NewEstimateRepository(store)
	estimateService := application.NewEstimateService(estimateRepo, equipmentService, emailClient, cfg.NotifyEmail)
	estimateHandler := handlers.NewEstimateHandler(estimateService, publicLimiter)

	// Contacto
	contactRepo := repository.NewContactRepository(store)
	contactService := application.NewContactService(contactRepo, emailClient, cfg.NotifyEmail)
	contactHandler := handlers.NewContactHandler(contactService, publicLimiter)

	// S3
	s3Service, err := services.NewS3Service(cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		log.Printf("Warning: S3 service initialization failed: %v", err)
	}

	// Carga inicial de las colecciones; un fallo deja la caché vacía y el
	// error visible en el panel, el server arranca igual.
	for name, refresh := range map[string]func() error{
		"logos":     logoService.Refresh,
		"letters":   letterService.Refresh,
		"equipment": equipmentService.Refresh,
	} {
		if err := refresh(); err != nil {
			log.Printf("Warning: initial load of %s failed: %v", name, err)
		}
	}

	// Refresco periódico opcional (instalaciones multi-administrador)
	refreshScheduler := scheduler.NewRefreshScheduler(cfg.RefreshInterval, map[string]func() error{
		"logos":     logoService.Refresh,
		"letters":   letterService.Refresh,
		"equipment": equipmentService.Refresh,
	})
	refreshScheduler.Start()
	defer refreshScheduler.Stop()

	api := app.Group("/api")

	// Rutas públicas
	api.Get("/logos", logoHandler.GetLogos)
	api.Get("/letters", letterHandler.GetLetters)
	api.Get("/equipment", equipmentHandler.GetEquipment)
	api.Get("/equipment/categories", equipmentHandler.GetCategories)
	api.Post("/estimates", estimateHandler.CreateEstimate)
	api.Post("/contact", contactHandler.Create)

	// Panel de administración
	admin := api.Group("/admin")

	logos := admin.Group("/logos")
	logos.Get("/", logoHandler.GetState)
	logos.Post("/", logoHandler.AddLogo)
	logos.Patch("/:id", logoHandler.UpdateLogo)
	logos.Delete("/:id", logoHandler.DeleteLogo)
	logos.Post("/:id/toggle", logoHandler.ToggleLogo)
	logos.Post("/reorder", logoHandler.ReorderLogos)
	logos.Post("/refresh", logoHandler.RefreshLogos)

	letters := admin.Group("/letters")
	letters.Get("/", letterHandler.GetState)
	letters.Post("/", letterHandler.AddLetter)
	letters.Patch("/:id", letterHandler.UpdateLetter)
	letters.Delete("/:id", letterHandler.DeleteLetter)
	letters.Post("/:id/toggle", letterHandler.ToggleLetter)
	letters.Post("/reorder", letterHandler.ReorderLetters)
	letters.Post("/refresh", letterHandler.RefreshLetters)

	equipment := admin.Group("/equipment")
	equipment.Get("/", equipmentHandler.GetState)
	equipment.Post("/", equipmentHandler.AddEquipment)
	equipment.Patch("/:id", equipmentHandler.UpdateEquipment)
	equipment.Delete("/:id", equipmentHandler.DeleteEquipment)
	equipment.Post("/:id/toggle", equipmentHandler.ToggleEquipment)
	equipment.Post("/reorder", equipmentHandler.ReorderEquipment)
	equipment.Post("/refresh", equipmentHandler.RefreshEquipment)

	admin.Get("/estimates", estimateHandler.ListEstimates)
	admin.Patch("/estimates/:id/status", estimateHandler.UpdateEstimateStatus)

	admin.Get("/contacts", contactHandler.List)
	admin.Patch("/contacts/:id/status", contactHandler.UpdateStatus)

	if s3Service != nil {
		s3Handler := handlers.NewS3Handler(s3Service)
		admin.Post("/upload", s3Handler.HandleUploadFile)
	}

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
