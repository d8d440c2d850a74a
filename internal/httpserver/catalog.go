package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"navhub/internal/domain"
	categorysvc "navhub/internal/service/category"
	settingssvc "navhub/internal/service/settings"
	sitesvc "navhub/internal/service/site"
	visitsvc "navhub/internal/service/visit"
)

func listCategoriesHandler(svc *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListPublic(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": categories})
	}
}

func getCategoryHandler(svc *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": category})
	}
}

func searchHandler(svc *sitesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sites, err := svc.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": sites})
	}
}

func publicSettingsHandler(svc *settingssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.Get(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": s})
	}
}

func recordVisitHandler(svc *visitsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := domain.Visit{
			SiteID:    c.Param("id"),
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
			Referer:   c.GetHeader("Referer"),
		}
		if err := svc.Record(c.Request.Context(), v); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record visit"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
