package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kbhan/dividend"
	"github.com/kbhan/dividend/renderer"
)

// calendarCmd holds the flags for the 'calendar' subcommand.
type calendarCmd struct {
	year    int
	basis   string
	account string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the dividend calendars of a year" }
func (*calendarCmd) Usage() string {
	return `dvd calendar [-y <year>] [-basis <basis>] [-account <account>]

  Displays two calendars for the year: dividends per holding per month, and
  dividends per account per month. Restrict to one account with -account.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report on. Defaults to the most recent year in the workbook.")
	f.StringVar(&c.basis, "basis", dividend.Posttax.String(), "Amount basis (pretax, posttax)")
	f.StringVar(&c.account, "account", dividend.AllAccounts, "Restrict to one account. All accounts by default.")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	basis, err := dividend.ParseAmountBasis(c.basis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	year := defaultYear(ledger, c.year)

	stocks := dividend.NewStockCalendar(ledger, year, basis, c.account)
	printMarkdown(renderer.StockCalendarMarkdown(stocks))

	accounts := dividend.NewAccountCalendar(ledger, year, basis, c.account)
	printMarkdown(renderer.AccountCalendarMarkdown(accounts))

	return subcommands.ExitSuccess
}
