package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/conversation"
)

type ConversationHandler struct {
	conversationUseCase *conversation.ConversationUseCase
}

func NewConversationHandler(conversationUseCase *conversation.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{
		conversationUseCase: conversationUseCase,
	}
}

// ListConversations returns the caller's conversation list
// @Summary List conversations
// @Description Active matches enriched with counterpart profile and last-message preview
// @Tags conversations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} conversation.ConversationView
// @Failure 401 {object} ErrorResponse
// @Router /conversations [get]
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	conversations, err := h.conversationUseCase.ListConversations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}
