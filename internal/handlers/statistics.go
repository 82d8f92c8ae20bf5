package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markjessn/mini-pms/internal/middleware"
	"github.com/markjessn/mini-pms/internal/services"
)

// StatisticsHandler exposes the per-organization aggregation query.
type StatisticsHandler struct {
	statsService *services.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(statsService *services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsService: statsService}
}

// GetProjectStatistics aggregates the tenant organization's project and task
// counts.
func (h *StatisticsHandler) GetProjectStatistics(c *gin.Context) {
	org, _ := middleware.GetOrganization(c)

	stats, err := h.statsService.Get(org.Slug)
	if err != nil {
		status, messages := classify(c, err)
		c.JSON(status, gin.H{"errors": messages})
		return
	}

	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"statistics": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
