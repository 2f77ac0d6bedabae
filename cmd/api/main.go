package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/handlers"
	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/repositories"
	"studymate/resume-analyzer/internal/services"
)

// Multipart framing on top of the file itself.
const bodyLimitSlack = 1 << 20

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()
	log.SetLevel(cfg.Server.Level())
	log.Info("✅ Config loaded successfully")

	// Initialize database
	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	repo := repositories.NewResumeAnalysisRepository(db, cfg.Database.Driver)
	if err := repo.Init(ctx); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}
	log.Info("✅ Repository initialized successfully")

	// Initialize AI providers
	geminiService, err := services.NewGeminiService(ctx, cfg.Providers.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}

	prompts := services.NewPromptBuilder()
	providers := services.BuildProviderChain(cfg.Providers, geminiService, prompts)
	analyzer := services.NewFallbackAnalyzer(cfg.Providers.Timeout, providers...)
	log.Infof("✅ AI provider chain: %v", services.ProviderNames(providers))

	// Optional archive and index
	archive, err := services.NewResumeArchive(ctx, cfg.Archive)
	if err != nil {
		log.Fatalf("❌ Failed to initialize upload archive: %v", err)
	}

	var store services.VectorStore
	if cfg.IndexEnabled() {
		store, err = services.NewQdrantStore(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
	}

	index, err := services.NewResumeIndex(ctx, store, geminiService, services.NewTextChunker())
	if err != nil {
		log.Fatalf("❌ Failed to initialize resume index: %v", err)
	}

	pipeline := services.NewAnalysisPipeline(services.NewTextExtractor(), analyzer, repo, archive, index)
	reporter := services.NewHealthReporter(cfg, repo, index)
	log.Info("✅ Services initialized successfully")

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(services.NewUploadReader(cfg.Storage.MaxFileSize), pipeline)
	healthHandler := handlers.NewHealthHandler(reporter, models.ServiceInfo{
		Service:     services.ServiceTitle,
		Version:     services.ServiceVersion,
		Database:    cfg.Database.Driver,
		AIProviders: services.ProviderNames(providers),
		Status:      "running",
	})
	searchHandler := handlers.NewSearchHandler(index)

	// Provider calls can take up to PROVIDER_TIMEOUT each.
	writeTimeout := cfg.Providers.Timeout*time.Duration(len(providers)) + 30*time.Second

	app := fiber.New(fiber.Config{
		AppName:      "StudyMate Resume Analyzer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + bodyLimitSlack,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.Register(app, analyzeHandler, healthHandler, searchHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

	if err := repo.Close(); err != nil {
		log.Warnf("⚠️  Failed to close database: %v", err)
	}
	if err := index.Close(); err != nil {
		log.Warnf("⚠️  Failed to close resume index: %v", err)
	}
	log.Info("👋 Server stopped")
}
