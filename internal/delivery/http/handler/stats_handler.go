package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumeo-app/lumeo-backend/internal/usecase/stats"
)

type StatsHandler struct {
	statsUseCase *stats.StatsUseCase
}

func NewStatsHandler(statsUseCase *stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// GetStats returns the caller's aggregate counters
// @Summary User stats
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} stats.Stats
// @Failure 401 {object} ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.statsUseCase.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecentActivity returns the caller's recent-activity feed
// @Summary Recent activity
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {array} stats.ActivityEntry
// @Failure 401 {object} ErrorResponse
// @Router /stats/activity [get]
func (h *StatsHandler) GetRecentActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.statsUseCase.GetRecentActivity(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
