package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lumeo-app/lumeo-backend/internal/auth"
	"github.com/lumeo-app/lumeo-backend/internal/config"
	"github.com/lumeo-app/lumeo-backend/internal/delivery/http"
	"github.com/lumeo-app/lumeo-backend/internal/delivery/http/handler"
	"github.com/lumeo-app/lumeo-backend/internal/delivery/http/middleware"
	"github.com/lumeo-app/lumeo-backend/internal/infrastructure/database"
	"github.com/lumeo-app/lumeo-backend/internal/infrastructure/gemini"
	"github.com/lumeo-app/lumeo-backend/internal/infrastructure/server"
	"github.com/lumeo-app/lumeo-backend/internal/logger"
	"github.com/lumeo-app/lumeo-backend/internal/repository/postgres"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/conversation"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/interaction"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/match"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/message"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/stats"
	"github.com/redis/go-redis/v9"
)

var log = logger.New("container")

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.SetLevelFromString(cfg.Logging.Level)

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis backs the stats cache only; the service runs without it.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("failed to initialize redis, stats cache disabled: %v", err)
			redisClient = nil
		}
	}

	// Gemini enrichment is optional in the same way.
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			log.Warn("failed to initialize gemini client, match enrichment disabled: %v", err)
			geminiClient = nil
		}
	}

	// Initialize repositories
	interactionRepo := postgres.NewInteractionRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	// Initialize use cases
	interactionUseCase := interaction.NewInteractionUseCase(
		interactionRepo,
		matchRepo,
		profileRepo,
		geminiClient,
	)

	matchUseCase := match.NewMatchUseCase(
		matchRepo,
		profileRepo,
	)

	messageUseCase := message.NewMessageUseCase(
		matchRepo,
		messageRepo,
	)

	conversationUseCase := conversation.NewConversationUseCase(
		matchRepo,
		profileRepo,
		messageRepo,
	)

	statsUseCase := stats.NewStatsUseCase(
		interactionRepo,
		matchRepo,
		messageRepo,
		profileRepo,
		redisClient,
	)

	// Initialize handlers
	interactionHandler := handler.NewInteractionHandler(interactionUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	conversationHandler := handler.NewConversationHandler(conversationUseCase)
	statsHandler := handler.NewStatsHandler(statsUseCase)

	// Initialize middleware
	verifier := auth.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	// Initialize router
	router := http.NewRouter(
		interactionHandler,
		matchHandler,
		messageHandler,
		conversationHandler,
		statsHandler,
		authMiddleware,
	)

	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn("error closing redis: %v", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
