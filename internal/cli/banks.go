package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"tag-ledger/internal/models"

	"github.com/google/subcommands"
)

// banksCmd lists the bank registry or registers a new bank.
type banksCmd struct {
	out    io.Writer
	create string
}

func (*banksCmd) Name() string     { return "banks" }
func (*banksCmd) Synopsis() string { return "list or register banks" }
func (*banksCmd) Usage() string {
	return `ledgerctl banks [-create <name>]

  Lists every bank with its transaction table. With -create, registers the bank
  and creates its table first.
`
}

func (c *banksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.create, "create", "", "Display name of a bank to register")
}

func (c *banksCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, closeDB, err := openApp()
	if err != nil {
		return fail(os.Stderr, "Error: %v", err)
	}
	defer closeDB()

	if c.create != "" {
		bank, err := a.BankService.CreateBank(ctx, c.create)
		if err != nil {
			return fail(os.Stderr, "Error registering bank %q: %v", c.create, err)
		}
		fmt.Fprintf(c.out, "registered %s as %s\n", bank.Name, bank.TxTableName)
	}

	banks, err := a.BankService.ListBanks(ctx)
	if err != nil {
		return fail(os.Stderr, "Error listing banks: %v", err)
	}
	renderBanks(c.out, banks)
	return subcommands.ExitSuccess
}

func renderBanks(w io.Writer, banks []models.Bank) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tTable")
	for _, b := range banks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, b.Name, b.TxTableName)
	}
	tw.Flush()
}
