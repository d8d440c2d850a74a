package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"navhub/internal/config"
	"navhub/internal/db"
	"navhub/internal/importer"
	transferrepo "navhub/internal/repository/transfer"
)

func main() {
	var (
		filePath string
		mode     string
	)
	flag.StringVar(&filePath, "file", "", "Path to a bookmark HTML export or JSON backup")
	flag.StringVar(&mode, "mode", "append", "Merge mode: append or overwrite")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Fatalf("read file: %v", err)
	}

	entries, err := importer.ParseFile(filePath, data)
	if err != nil {
		logger.Fatalf("parse file: %v", err)
	}

	imp := importer.New(transferrepo.NewPostgres(pool), logger)

	start := time.Now()
	count, err := imp.Run(ctx, entries, importer.ParseMode(mode))
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d categories in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
