package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

// MetricsController serves the lead dashboard summary.
type MetricsController struct {
	Metrics *services.MetricsService
}

// Summary returns counters plus the daily/weekly histograms and the
// per-owner rollup.
func (m *MetricsController) Summary(c *gin.Context) {
	summary, err := m.Metrics.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
