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

// growthCmd holds the flags for the 'growth' subcommand.
type growthCmd struct {
	basis string
}

func (*growthCmd) Name() string     { return "growth" }
func (*growthCmd) Synopsis() string { return "display year-over-year dividend growth" }
func (*growthCmd) Usage() string {
	return `dvd growth [-basis <basis>]

  Displays yearly dividend totals and their growth rate over the prior year.
  Useful to check that dividend growth is outpacing inflation.
`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.basis, "basis", dividend.Posttax.String(), "Amount basis (pretax, posttax)")
}

func (c *growthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.GrowthMarkdown(dividend.NewAnnualGrowth(ledger, basis)))
	return subcommands.ExitSuccess
}
