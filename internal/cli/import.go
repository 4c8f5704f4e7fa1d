package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/models"

	"github.com/google/subcommands"
)

const importPollInterval = 200 * time.Millisecond

// importCmd loads a statement file into a bank table and waits for it to finish.
type importCmd struct {
	out         io.Writer
	userID      string
	bankID      string
	accountID   string
	statementID string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a CSV or XLSX statement into a bank table" }
func (*importCmd) Usage() string {
	return `ledgerctl import -user <id> -bank <id> [-account <id>] [-statement <id>] <file>

  Every row of the file becomes one transaction of the user in the bank's table.
  A "tags" column, comma separated, is stored as tag name references.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "Owner of the imported transactions")
	f.StringVar(&c.bankID, "bank", "", "Bank whose table receives the rows")
	f.StringVar(&c.accountID, "account", "", "Account id stored on every row")
	f.StringVar(&c.statementID, "statement", "", "Statement id stored on every row")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == "" || c.bankID == "" || f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	path := f.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(os.Stderr, "Error reading %s: %v", path, err)
	}

	a, closeDB, err := openApp()
	if err != nil {
		return fail(os.Stderr, "Error: %v", err)
	}
	defer closeDB()

	req := &dto.ImportRequest{AccountID: c.accountID, StatementID: c.statementID}
	job, err := a.ImportService.StartImport(ctx, c.userID, c.bankID, req, filepath.Base(path), data)
	if err != nil {
		return fail(os.Stderr, "Error starting import: %v", err)
	}
	fmt.Fprintf(c.out, "import %s started: %d rows\n", job.ID, job.TotalRows)

	ticker := time.NewTicker(importPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return fail(os.Stderr, "Interrupted while import %s was running", job.ID)
		case <-ticker.C:
		}

		job, err = a.ImportService.GetImport(ctx, c.userID, job.ID)
		if err != nil {
			return fail(os.Stderr, "Error reading import status: %v", err)
		}

		switch job.Status {
		case models.JobStatusCompleted:
			fmt.Fprintf(c.out, "import %s completed: %d processed, %d failed\n", job.ID, job.ProcessedRows, job.FailedRows)
			return subcommands.ExitSuccess
		case models.JobStatusFailed:
			return fail(os.Stderr, "import %s failed: %s", job.ID, job.ErrorMessage)
		}
	}
}
