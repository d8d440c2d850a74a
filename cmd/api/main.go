package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"navhub/internal/config"
	"navhub/internal/db"
	"navhub/internal/httpserver"
	"navhub/internal/importer"
	categoryrepo "navhub/internal/repository/category"
	settingsrepo "navhub/internal/repository/settings"
	siterepo "navhub/internal/repository/site"
	transferrepo "navhub/internal/repository/transfer"
	userrepo "navhub/internal/repository/user"
	visitrepo "navhub/internal/repository/visit"
	authsvc "navhub/internal/service/auth"
	categorysvc "navhub/internal/service/category"
	settingssvc "navhub/internal/service/settings"
	sitesvc "navhub/internal/service/site"
	visitsvc "navhub/internal/service/visit"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	categoryRepo := categoryrepo.NewPostgres(dbpool)
	categoryService := categorysvc.New(categoryRepo)
	siteRepo := siterepo.NewPostgres(dbpool)
	siteService := sitesvc.New(siteRepo)
	settingsService := settingssvc.New(settingsrepo.NewPostgres(dbpool), cfg.SettingsCacheTTL)
	visitService := visitsvc.New(visitrepo.NewPostgres(dbpool), settingsService)
	authService := authsvc.New(userrepo.NewPostgres(dbpool), cfg.JWTSecret, cfg.AdminTokenTTL)
	imp := importer.New(transferrepo.NewPostgres(dbpool), logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CategorySvc: categoryService,
		SiteSvc:     siteService,
		VisitSvc:    visitService,
		SettingsSvc: settingsService,
		AuthSvc:     authService,
		Importer:    imp,
		Exporter:    categoryRepo,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
