package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// recomputeCmd runs one aggregation pass in process.
type recomputeCmd struct {
	out    io.Writer
	userID string
}

func (*recomputeCmd) Name() string     { return "recompute" }
func (*recomputeCmd) Synopsis() string { return "rebuild the tags summary of a user now" }
func (*recomputeCmd) Usage() string {
	return `ledgerctl recompute -user <id>

  Scans every bank table for the user's tagged transactions and replaces the stored
  tags summary. Prints the pass result as JSON.
`
}

func (c *recomputeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "User whose summary is rebuilt")
}

func (c *recomputeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		return subcommands.ExitUsageError
	}

	a, closeDB, err := openApp()
	if err != nil {
		return fail(os.Stderr, "Error: %v", err)
	}
	defer closeDB()

	result, err := a.Engine.Recompute(ctx, c.userID)
	if err != nil {
		return fail(os.Stderr, "Error recomputing summary for %q: %v", c.userID, err)
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fail(os.Stderr, "Error writing result: %v", err)
	}
	return subcommands.ExitSuccess
}
