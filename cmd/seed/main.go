package main

import (
	"context"
	"log"
	"os"

	"navhub/internal/config"
	"navhub/internal/db"
	"navhub/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Run(ctx, pool, logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}
}
