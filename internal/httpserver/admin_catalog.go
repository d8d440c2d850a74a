package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"navhub/internal/domain"
	categorysvc "navhub/internal/service/category"
	sitesvc "navhub/internal/service/site"

	siterepo "navhub/internal/repository/site"
)

type pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func paginate(page, pageSize, total int) pagination {
	totalPages := (total + pageSize - 1) / pageSize
	return pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

func adminListCategoriesHandler(svc *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := intQuery(c, "page", 1)
		pageSize := intQuery(c, "pageSize", 10)
		categories, total, err := svc.ListPage(c.Request.Context(), page, pageSize, c.Query("search"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": categories, "pagination": paginate(page, pageSize, total)})
	}
}

func createCategoryHandler(svc *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		category, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": category})
	}
}

func updateCategoryHandler(svc *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		category, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": category})
	}
}

func deleteCategoryHandler(svc *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func adminListSitesHandler(svc *sitesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := siterepo.ListFilter{
			Page:       intQuery(c, "page", 1),
			PageSize:   intQuery(c, "pageSize", 10),
			CategoryID: c.Query("categoryId"),
			Search:     c.Query("search"),
		}
		sites, total, err := svc.ListPage(c.Request.Context(), f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": sites, "pagination": paginate(f.Page, f.PageSize, total)})
	}
}

func createSiteHandler(svc *sitesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in sitesvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		site, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create site"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": site})
	}
}

func updateSiteHandler(svc *sitesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in sitesvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		site, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update site"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": site})
	}
}

func deleteSiteHandler(svc *sitesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete site"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func toggleSiteHandler(svc *sitesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		site, err := svc.TogglePublish(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle site"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": site})
	}
}
