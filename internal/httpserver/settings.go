package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingssvc "navhub/internal/service/settings"
)

func getSettingsHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.Get(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": s})
	}
}

func updateSettingsHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in settingssvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		s, err := svc.Update(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": s})
	}
}
