package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/tender-evaluator/internal/config"
	"alfredoptarigan/tender-evaluator/internal/handlers"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	eventRepo := repositories.NewSourcingEventRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	proposalRepo := repositories.NewProposalFileRepository(db)
	recordRepo := repositories.NewEvaluationRecordRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	criterionRepo := repositories.NewCriterionRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	componentRepo := repositories.NewCostComponentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize baseline generator
	baselineService := services.NewBaselineService(
		vendorRepo,
		proposalRepo,
		docRepo,
		criterionRepo,
		offerRepo,
		componentRepo,
		geminiService,
		qdrantService,
		pdfParser,
		cfg.Worker.RetryMaxAttempts,
	)
	log.Println("✅ Baseline service initialized")

	// Initialize worker
	worker := services.NewWorker(
		vendorRepo,
		baselineService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize evaluation services
	administrationService := services.NewAdministrationService(docRepo, recordRepo)
	technicalService := services.NewTechnicalService(criterionRepo, recordRepo)
	commercialService := services.NewCommercialService(
		eventRepo,
		offerRepo,
		recordRepo,
		componentRepo,
		cfg.Negotiation.Schedule,
		nil,
	)
	rankingService := services.NewRankingService(
		vendorRepo,
		offerRepo,
		administrationService,
		technicalService,
	)
	log.Println("✅ Evaluation services initialized")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		proposalRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	eventHandler := handlers.NewEventHandler(
		eventRepo,
		vendorRepo,
		recordRepo,
		commercialService,
		rankingService,
	)
	vendorHandler := handlers.NewVendorHandler(
		eventRepo,
		vendorRepo,
		proposalRepo,
		offerRepo,
		recordRepo,
		worker,
	)
	administrationHandler := handlers.NewAdministrationHandler(administrationService, docRepo)
	technicalHandler := handlers.NewTechnicalHandler(technicalService, criterionRepo)
	commercialHandler := handlers.NewCommercialHandler(commercialService, offerRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Tender Evaluator API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/events", eventHandler.HandleCreateEvent)
	api.Get("/events/:id", eventHandler.HandleGetProgress)
	api.Post("/events/:id/rounds/advance", eventHandler.HandleAdvanceRound)
	api.Get("/events/:id/ranking", eventHandler.HandleGetRanking)
	api.Post("/events/:id/vendors", vendorHandler.HandleRegisterVendor)
	api.Post(
		"/events/:id/vendors/:vendorId/stages/:stage/submit",
		vendorHandler.HandleSubmitStage(administrationService, technicalService, commercialService),
	)
	api.Get("/events/:id/vendors/:vendorId/documents", administrationHandler.HandleListDocuments)
	api.Patch("/events/:id/vendors/:vendorId/documents/:name", administrationHandler.HandleSetDocumentField)
	api.Get("/events/:id/vendors/:vendorId/criteria", technicalHandler.HandleGetScore)
	api.Patch("/events/:id/vendors/:vendorId/criteria/:name/score", technicalHandler.HandleSetManualScore)
	api.Get("/events/:id/vendors/:vendorId/offer", commercialHandler.HandleGetOffer)
	api.Patch("/events/:id/vendors/:vendorId/offer/score", commercialHandler.HandleSetManualScore)
	api.Get("/events/:id/vendors/:vendorId/opportunities", commercialHandler.HandleGetOpportunities)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Tender Evaluator API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/events",
				"POST /api/v1/events/:id/vendors",
				"POST /api/v1/events/:id/rounds/advance",
				"GET /api/v1/events/:id/ranking",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
