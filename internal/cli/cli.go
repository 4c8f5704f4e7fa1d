// Package cli holds the ledgerctl subcommands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tag-ledger/internal/app"
	"tag-ledger/internal/config"
	"tag-ledger/internal/database"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var envFile = flag.String("env-file", ".env", "Path to the environment file loaded before configuration")

// Register adds every ledgerctl command to c.
func Register(c *subcommands.Commander) {
	c.Register(&recomputeCmd{out: os.Stdout}, "engine")
	c.Register(&summaryCmd{out: os.Stdout}, "engine")
	c.Register(&classifyCmd{out: os.Stdout, in: os.Stdin}, "engine")

	c.Register(&banksCmd{out: os.Stdout}, "data")
	c.Register(&importCmd{out: os.Stdout}, "data")

	c.Register(&migrateCmd{out: os.Stdout}, "database")
}

// openApp loads configuration and connects to the database. Metrics go to a private
// registry since the CLI never serves them.
func openApp() (*app.App, func(), error) {
	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("warning, no env file loaded from %s: %v", *envFile, err)
	}

	cfg := config.LoadOffline()
	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	a, err := app.New(cfg, db, prometheus.NewRegistry())
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return a, closeDB, nil
}

func fail(w io.Writer, format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(w, format+"\n", args...)
	return subcommands.ExitFailure
}
