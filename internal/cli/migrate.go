package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tag-ledger/internal/config"
	"tag-ledger/internal/database"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// migrateCmd applies the SQL migrations of the fixed tables.
type migrateCmd struct {
	out    io.Writer
	status bool
	seed   bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply database migrations" }
func (*migrateCmd) Usage() string {
	return `ledgerctl migrate [-status] [-seed]

  Applies pending migrations from db/migrations. Bank transaction tables are not
  migrated here; they are created when a bank is registered.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.status, "status", false, "Only print the current migration version")
	f.BoolVar(&c.seed, "seed", false, "Load db/seeds after migrating")
}

func (c *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("warning, no env file loaded from %s: %v", *envFile, err)
	}

	cfg := config.LoadOffline()
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fail(os.Stderr, "Error connecting to database: %v", err)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fail(os.Stderr, "Error: %v", err)
	}
	runner := database.NewMigrationRunner(sqlDB)

	if !c.status {
		if err := runner.RunMigrations(); err != nil {
			return fail(os.Stderr, "Error running migrations: %v", err)
		}
		if c.seed {
			os.Setenv("SEED_DATABASE", "true")
			if err := runner.LoadSeeds(); err != nil {
				return fail(os.Stderr, "Error loading seeds: %v", err)
			}
		}
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return fail(os.Stderr, "Error reading migration status: %v", err)
	}
	fmt.Fprintf(c.out, "version %d (dirty: %t)\n", version, dirty)
	return subcommands.ExitSuccess
}
