package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/interaction"
)

type InteractionHandler struct {
	interactionUseCase *interaction.InteractionUseCase
}

func NewInteractionHandler(interactionUseCase *interaction.InteractionUseCase) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
	}
}

// RecordInteraction handles a like/pass on another user
// @Summary Record an interaction
// @Description Record a like or pass toward another user; a reciprocal like creates a match
// @Tags interactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body interaction.InteractionRequest true "Interaction"
// @Success 200 {object} interaction.InteractionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /interactions [post]
func (h *InteractionHandler) RecordInteraction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req interaction.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.interactionUseCase.RecordInteraction(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
