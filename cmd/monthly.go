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

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	year  int
	basis string

	// processed
	parsedBasis dividend.AmountBasis
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly dividend income of a year" }
func (*monthlyCmd) Usage() string {
	return `dvd monthly [-y <year>] [-basis <basis>]

  Displays dividend income bucketed by month, with the year's total.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report on. Defaults to the most recent year in the workbook.")
	f.StringVar(&c.basis, "basis", dividend.Posttax.String(), "Amount basis (pretax, posttax)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	basis, err := dividend.ParseAmountBasis(c.basis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	c.parsedBasis = basis

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	series := dividend.NewMonthlySeries(ledger, defaultYear(ledger, c.year), c.parsedBasis)
	printMarkdown(renderer.MonthlyMarkdown(series))
	return subcommands.ExitSuccess
}
