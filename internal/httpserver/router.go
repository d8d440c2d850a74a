package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"navhub/internal/importer"
	categorysvc "navhub/internal/service/category"
	settingssvc "navhub/internal/service/settings"
	sitesvc "navhub/internal/service/site"
	visitsvc "navhub/internal/service/visit"
)

// Deps bundles the services the router depends on.
type Deps struct {
	CategorySvc *categorysvc.Service
	SiteSvc     *sitesvc.Service
	VisitSvc    *visitsvc.Service
	SettingsSvc *settingssvc.Service
	AuthSvc     AuthService
	Importer    *importer.Importer
	Exporter    Exporter
	CORSOrigins []string
}

// buildRouter wires public and admin routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.CORSOrigins
		corsCfg.AllowCredentials = true
		corsCfg.AddAllowHeaders("Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/categories", listCategoriesHandler(deps.CategorySvc))
		api.GET("/categories/:slug", getCategoryHandler(deps.CategorySvc))
		api.GET("/search", searchHandler(deps.SiteSvc))
		api.GET("/settings", publicSettingsHandler(deps.SettingsSvc))
		api.POST("/sites/:id/visit", recordVisitHandler(deps.VisitSvc))
		api.POST("/admin/login", loginHandler(deps.AuthSvc))
	}

	admin := api.Group("/admin", authRequired(deps.AuthSvc))
	{
		admin.GET("/me", currentUserHandler)
		admin.PUT("/me", updateUserHandler(deps.AuthSvc))
		admin.GET("/users", listUsersHandler(deps.AuthSvc))

		admin.GET("/categories", adminListCategoriesHandler(deps.CategorySvc))
		admin.POST("/categories", createCategoryHandler(deps.CategorySvc))
		admin.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc))
		admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))

		admin.GET("/sites", adminListSitesHandler(deps.SiteSvc))
		admin.POST("/sites", createSiteHandler(deps.SiteSvc))
		admin.PUT("/sites/:id", updateSiteHandler(deps.SiteSvc))
		admin.DELETE("/sites/:id", deleteSiteHandler(deps.SiteSvc))
		admin.POST("/sites/:id/toggle", toggleSiteHandler(deps.SiteSvc))

		admin.GET("/stats/visits", visitStatsHandler(deps.VisitSvc))
		admin.GET("/stats/frequency", visitFrequencyHandler(deps.VisitSvc))

		admin.GET("/settings", getSettingsHandler(deps.SettingsSvc))
		admin.PUT("/settings", updateSettingsHandler(deps.SettingsSvc))

		admin.POST("/data/import", importHandler(deps.Importer, logger))
		admin.GET("/data/export", exportBackupHandler(deps.Exporter))
		admin.GET("/bookmarks/export", exportBookmarksHandler(deps.Exporter))
	}

	return router
}
