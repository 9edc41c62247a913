// Command algomind-import ingests problem export files into a user's
// collection. It reads *.json files from a configured input directory,
// validates and maps them to domain problems, then inserts them into
// PostgreSQL.
//
// Flags:
//
//	--user           user UUID to import for (required)
//	--import-config  path to import config YAML (optional; falls back to env)
//	--dry-run        parse and validate without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/adapter/postgres"
	problemrepo "github.com/sambangiadharsh/algomind/internal/adapter/postgres/problem"
	"github.com/sambangiadharsh/algomind/internal/app"
	"github.com/sambangiadharsh/algomind/internal/config"
	"github.com/sambangiadharsh/algomind/internal/importer"
)

func main() {
	userFlag := flag.String("user", "", "user UUID to import for")
	importConfigFlag := flag.String("import-config", "", "path to import config YAML")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("--user must be a valid UUID: %v", err)
	}

	// Load app config (for DB connection and logging).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := importer.LoadConfig(*importConfigFlag)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		importCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := problemrepo.New(pool)

	if importCfg.DryRun {
		logger.Info("dry-run mode: no DB writes")
	}

	if _, err := importer.Run(ctx, importCfg, repo, userID, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
