package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"tag-ledger/internal/models"

	"github.com/google/subcommands"
)

// summaryCmd prints the stored tags summary of a user.
type summaryCmd struct {
	out      io.Writer
	userID   string
	currency string
	banks    bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the stored tags summary of a user" }
func (*summaryCmd) Usage() string {
	return `ledgerctl summary -user <id> [-currency INR] [-banks]

  Prints credit, debit and balance per tag from the last recompute.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "User whose summary is displayed")
	f.StringVar(&c.currency, "currency", "INR", "ISO currency code used to format amounts")
	f.BoolVar(&c.banks, "banks", false, "Also print the per-bank breakdown of each tag")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		return subcommands.ExitUsageError
	}

	a, closeDB, err := openApp()
	if err != nil {
		return fail(os.Stderr, "Error: %v", err)
	}
	defer closeDB()

	snapshot, err := a.TagService.GetSummary(ctx, c.userID)
	if err != nil {
		return fail(os.Stderr, "Error loading summary for %q: %v", c.userID, err)
	}

	renderSummary(c.out, snapshot, c.currency, c.banks)
	return subcommands.ExitSuccess
}

func renderSummary(w io.Writer, snapshot *models.TagsSummarySnapshot, currency string, withBanks bool) {
	fmt.Fprintf(w, "Computed at %s\n\n", snapshot.ComputedAt.Format("2006-01-02 15:04:05 MST"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Tag\tCredit\tDebit\tBalance\tCount\t")
	for _, tag := range snapshot.Tags {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t\n",
			tag.TagName,
			formatAmount(tag.Credit, currency),
			formatAmount(tag.Debit, currency),
			formatAmount(tag.Balance, currency),
			tag.TransactionCount,
		)
		if !withBanks {
			continue
		}
		bankNames := make([]string, 0, len(tag.BankBreakdown))
		for name := range tag.BankBreakdown {
			bankNames = append(bankNames, name)
		}
		slices.Sort(bankNames)
		for _, name := range bankNames {
			b := tag.BankBreakdown[name]
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%d\t\n",
				name,
				formatAmount(b.Credit, currency),
				formatAmount(b.Debit, currency),
				formatAmount(b.Balance, currency),
				b.TransactionCount,
			)
		}
	}
	tw.Flush()
}
