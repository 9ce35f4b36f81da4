// Package cmd implements the CLI application to analyze dividend income.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"slices"

	"github.com/google/subcommands"

	"github.com/kbhan/dividend"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	register(c, &monthlyCmd{}, "reports")
	register(c, &calendarCmd{}, "reports")
	register(c, &ownerCmd{}, "reports")
	register(c, &growthCmd{}, "reports")
	register(c, &fireCmd{}, "reports")

	register(c, &topicCmd{}, "help")
}

// registered keeps the known subcommand names so main can route anything
// else to dvd-<name> extension binaries.
var registered = []string{"help", "flags", "commands"}

func register(c *subcommands.Commander, cmd subcommands.Command, group string) {
	c.Register(cmd, group)
	registered = append(registered, cmd.Name())
}

// Known returns true if name is a built-in subcommand.
func Known(name string) bool { return slices.Contains(registered, name) }

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var workbookFile = flag.String("workbook-file", "dividends.xlsx", "Path to the brokerage export workbook (one sheet per year)")

// Verbose enables progress logging on stderr.
var Verbose = flag.Bool("v", false, "enable verbose logging")

// LoadLedger opens the workbook and builds the normalized dividend ledger.
// The ledger is rebuilt from scratch on every invocation.
func LoadLedger() (*dividend.Ledger, error) {
	wb, err := dividend.OpenWorkbook(*workbookFile)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	txs, err := dividend.ReadTransactions(wb)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", *workbookFile, err)
	}
	ledger := dividend.NewLedger(txs)
	if *Verbose {
		log.Printf("loaded %d dividend records from %q", ledger.Len(), *workbookFile)
	}
	return ledger, nil
}

// defaultYear resolves a zero year flag to the most recent year on record.
func defaultYear(ledger *dividend.Ledger, year int) int {
	if year == 0 {
		return ledger.MaxYear()
	}
	return year
}
