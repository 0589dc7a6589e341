package http

import (
	"github.com/gin-gonic/gin"
	"github.com/lumeo-app/lumeo-backend/internal/delivery/http/handler"
	"github.com/lumeo-app/lumeo-backend/internal/delivery/http/middleware"
)

type Router struct {
	interactionHandler  *handler.InteractionHandler
	matchHandler        *handler.MatchHandler
	messageHandler      *handler.MessageHandler
	conversationHandler *handler.ConversationHandler
	statsHandler        *handler.StatsHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	interactionHandler *handler.InteractionHandler,
	matchHandler *handler.MatchHandler,
	messageHandler *handler.MessageHandler,
	conversationHandler *handler.ConversationHandler,
	statsHandler *handler.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		interactionHandler:  interactionHandler,
		matchHandler:        matchHandler,
		messageHandler:      messageHandler,
		conversationHandler: conversationHandler,
		statsHandler:        statsHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.POST("/interactions", r.interactionHandler.RecordInteraction)

			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.ListMatches)
				matches.DELETE("/:match_id", r.matchHandler.Unmatch)
				matches.GET("/:match_id/messages", r.messageHandler.GetHistory)
				matches.POST("/:match_id/read", r.messageHandler.MarkRead)
			}

			protected.POST("/messages", r.messageHandler.SendMessage)
			protected.GET("/conversations", r.conversationHandler.ListConversations)

			stats := protected.Group("/stats")
			{
				stats.GET("", r.statsHandler.GetStats)
				stats.GET("/activity", r.statsHandler.GetRecentActivity)
			}
		}
	}

	return router
}
