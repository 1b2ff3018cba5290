package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homeconnect.backend/internal/interfaces/http/response"
	"homeconnect.backend/internal/usecases"
)

// StatsHandler handles the public stats endpoint
type StatsHandler struct {
	statsUsecase *usecases.StatsUsecase
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUsecase *usecases.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
	}
}

// GetStats returns catalog-wide aggregate counts
// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsUsecase.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
