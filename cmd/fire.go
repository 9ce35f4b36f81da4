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

// fireCmd holds the flags for the 'fire' subcommand.
type fireCmd struct {
	goal int64
	year int
}

func (*fireCmd) Name() string     { return "fire" }
func (*fireCmd) Synopsis() string { return "display progress toward the FIRE income goal" }
func (*fireCmd) Usage() string {
	return `dvd fire [-goal <monthly amount>] [-y <year>]

  Compares the year's post-tax dividend income against a monthly living-cost
  goal multiplied by 12. See 'dvd topic fire'.
`
}

func (c *fireCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.goal, "goal", 4_000_000, "Monthly living-cost goal in won")
	f.IntVar(&c.year, "y", 0, "Year to report on. Defaults to the most recent year in the workbook.")
}

func (c *fireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goal < 0 {
		fmt.Fprintf(os.Stderr, "Error: the monthly goal cannot be negative\n")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FireMarkdown(dividend.NewFireProgress(ledger, c.goal, c.year)))
	return subcommands.ExitSuccess
}
