package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/kbhan/dividend"
	"github.com/kbhan/dividend/renderer"
)

// ownerCmd holds the flags for the 'owner' subcommand.
type ownerCmd struct {
	owner    string
	accounts string
	year     int
	month    int
	basis    string
}

func (*ownerCmd) Name() string     { return "owner" }
func (*ownerCmd) Synopsis() string { return "display an owner's dividends by account and month" }
func (*ownerCmd) Usage() string {
	return `dvd owner -o <owner> [-accounts <a,b>] [-y <year>] [-m <month>] [-basis <basis>]

  Displays the owner's per-account monthly summary for the year. With -m, also
  lists the individual transactions of that month, most recent first.
`
}

func (c *ownerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "o", "", "Owner to report on. Required.")
	f.StringVar(&c.accounts, "accounts", "", "Comma-separated accounts to include. Defaults to all of the owner's accounts.")
	f.IntVar(&c.year, "y", 0, "Year to report on. Defaults to the most recent year in the workbook.")
	f.IntVar(&c.month, "m", 0, "Month (1-12) for the transaction drill-down. Summary only when omitted.")
	f.StringVar(&c.basis, "basis", dividend.Posttax.String(), "Amount basis (pretax, posttax)")
}

func (c *ownerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	basis, err := dividend.ParseAmountBasis(c.basis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.month < 0 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: month %d out of range\n", c.month)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.owner == "" {
		fmt.Fprintf(os.Stderr, "Error: -o is required. Owners in this workbook: %s\n", strings.Join(ledger.Owners(), ", "))
		return subcommands.ExitUsageError
	}

	accounts := splitAccounts(c.accounts)
	if len(accounts) == 0 {
		accounts = ledger.AccountsOf(c.owner)
	}
	year := defaultYear(ledger, c.year)

	summary := dividend.NewOwnerSummary(ledger, c.owner, accounts, year, basis)
	printMarkdown(renderer.OwnerSummaryMarkdown(c.owner, summary))

	if c.month > 0 {
		details := dividend.NewMonthlyDetails(ledger, c.owner, accounts, year, c.month, basis)
		printMarkdown(renderer.DetailsMarkdown(details))
	}
	return subcommands.ExitSuccess
}

// splitAccounts parses the comma-separated -accounts flag, dropping empty
// entries.
func splitAccounts(s string) []string {
	var accounts []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			accounts = append(accounts, a)
		}
	}
	return accounts
}
