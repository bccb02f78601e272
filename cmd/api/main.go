package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"talentnavigator/backend/internal/config"
	"talentnavigator/backend/internal/handlers"
	"talentnavigator/backend/internal/logger"
	"talentnavigator/backend/internal/models"
	"talentnavigator/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize Gemini AI. Missing credentials are not fatal: every
	// component carries a deterministic fallback, so the server runs in
	// degraded mode instead.
	var generator services.TextGenerator
	if cfg.Gemini.APIKey != "" {
		generator, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			zapLogger.Warn("failed to initialize gemini, running in degraded mode", zap.Error(err))
			generator = nil
		} else {
			zapLogger.Info("gemini initialized", zap.String("model", cfg.Gemini.Model))
		}
	} else {
		zapLogger.Warn("GEMINI_API_KEY not set, running in degraded mode")
	}

	// Initialize services
	jdAnalyzer := services.NewJDAnalyzerService(generator, zapLogger)
	resumeScreener := services.NewResumeScreenerService(generator, zapLogger)
	interviewEvaluator := services.NewInterviewEvaluatorService(generator, zapLogger)
	scoreAggregator := services.NewScoreAggregatorService(generator, zapLogger)
	questionGenerator := services.NewQuestionGeneratorService(generator, zapLogger)
	extractor := services.NewFileExtractorService()

	pipeline := services.NewPipelineService(
		jdAnalyzer,
		resumeScreener,
		interviewEvaluator,
		scoreAggregator,
		zapLogger,
	)
	zapLogger.Info("services initialized")

	// Initialize handlers
	jdHandler := handlers.NewJDHandler(jdAnalyzer, generator != nil)
	resumeHandler := handlers.NewResumeHandler(jdAnalyzer, resumeScreener, extractor)
	interviewHandler := handlers.NewInterviewHandler(questionGenerator, interviewEvaluator, jdAnalyzer)
	evaluateHandler := handlers.NewEvaluateHandler(pipeline, extractor)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Talent Navigator API",
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:    "ok",
			Gemini:    generator != nil,
			APIKeySet: cfg.Gemini.APIKey != "",
		})
	})

	// API endpoints
	app.Post("/analyze-jd", jdHandler.HandleAnalyzeJD)
	app.Post("/generate-interview", interviewHandler.HandleGenerateInterview)
	app.Post("/score-answer", interviewHandler.HandleScoreAnswer)
	app.Post("/screen-resume", resumeHandler.HandleScreenResume)
	app.Post("/screen-resume-file", resumeHandler.HandleScreenResumeFile)
	app.Post("/evaluate-candidate", evaluateHandler.HandleEvaluateCandidate)
	app.Post("/evaluate-candidate-file", evaluateHandler.HandleEvaluateCandidateFile)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Talent Navigator API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /health",
				"POST /analyze-jd",
				"POST /generate-interview",
				"POST /score-answer",
				"POST /screen-resume",
				"POST /screen-resume-file",
				"POST /evaluate-candidate",
				"POST /evaluate-candidate-file",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
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
