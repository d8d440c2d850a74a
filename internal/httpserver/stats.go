package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	visitsvc "navhub/internal/service/visit"
)

func visitStatsHandler(svc *visitsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := intQuery(c, "days", 30)
		limit := intQuery(c, "limit", 10)
		stats, err := svc.Stats(c.Request.Context(), days, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch visit stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": stats})
	}
}

func visitFrequencyHandler(svc *visitsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := intQuery(c, "days", 30)
		freq, err := svc.Frequency(c.Request.Context(), days)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch visit frequency"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": freq})
	}
}
