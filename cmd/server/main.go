package main

import (
	"context"
	"os"

	"mindlog-backend/config"
	"mindlog-backend/handlers"
	"mindlog-backend/middleware"
	"mindlog-backend/repository"
	"mindlog-backend/service"
	"mindlog-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		godotenv.Load("../../.env")
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	if !cfg.IsProduction() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()

	db, err := initPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Postgres")
	}
	defer db.Close()
	logger.Info().Msg("Postgres connection established")

	exportStorage, err := storage.New(storage.Config{
		Type:         storage.Type(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.S3Region,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	logger.Info().Str("type", cfg.StorageType).Msg("storage initialized")

	geminiClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}
	defer geminiClient.Close()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(db)
	moodRepo := repository.NewPostgresMoodRepository(db)
	promptRepo := repository.NewPostgresPromptRepository(db)
	journalRepo := repository.NewPostgresJournalRepository(db)

	// Initialize services
	userService := service.NewUserService(
		service.WithUserRepository(userRepo),
	)
	authService := service.NewAuthService(
		service.AuthWithUserRepository(userRepo),
		service.AuthWithSecret(cfg.JWTSecret),
		service.AuthWithTokenTTL(cfg.TokenTTL),
	)
	moodService := service.NewMoodService(
		service.WithMoodRepository(moodRepo),
	)
	promptService := service.NewPromptService(
		service.WithPromptRepository(promptRepo),
	)
	journalService := service.NewJournalService(
		service.JournalWithJournalRepository(journalRepo),
		service.JournalWithPromptRepository(promptRepo),
	)
	feedbackService := service.NewFeedbackService(
		service.FeedbackWithGenerator(service.NewGeminiGenerator(geminiClient, cfg.GeminiModel)),
	)
	exportService := service.NewExportService(
		service.ExportWithUserRepository(userRepo),
		service.ExportWithMoodRepository(moodRepo),
		service.ExportWithJournalRepository(journalRepo),
		service.ExportWithStorage(exportStorage),
	)

	if err := promptService.SeedDefaults(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed prompts")
	}
	logger.Info().Msg("prompt catalog seeded")

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, exportService)
	authHandler := handlers.NewAuthHandler(authService)
	moodHandler := handlers.NewMoodHandler(moodService)
	promptHandler := handlers.NewPromptHandler(promptService)
	journalHandler := handlers.NewJournalHandler(journalService, feedbackService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	r.POST("/login", authHandler.Login)

	r.POST("/users/", userHandler.CreateUser)
	r.GET("/users/", userHandler.ListUsers)
	r.GET("/users/:id", userHandler.GetUser)
	r.PUT("/users/:id", userHandler.UpdateUser)
	r.DELETE("/users/:id", userHandler.DeleteUser)

	r.GET("/prompts/", promptHandler.ListPrompts)
	r.GET("/prompts/:id", promptHandler.GetPrompt)

	r.POST("/journal/feedback", journalHandler.Feedback)

	authed := r.Group("/", middleware.RequireAuth(authService))
	{
		authed.GET("/users/me", userHandler.GetMe)
		authed.GET("/users/me/export", userHandler.ExportMyData)

		authed.POST("/moods/", moodHandler.CreateMood)
		authed.GET("/moods/", moodHandler.ListMoods)

		authed.POST("/journal/", journalHandler.CreateEntry)
		authed.GET("/journal/", journalHandler.ListEntries)
		authed.GET("/journal/:id", journalHandler.GetEntry)
		authed.PUT("/journal/:id", journalHandler.UpdateEntry)
		authed.DELETE("/journal/:id", journalHandler.DeleteEntry)
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return pool, nil
}
