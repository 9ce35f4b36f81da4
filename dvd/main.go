// Command dvd analyzes dividend income from a brokerage xlsx export.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/kbhan/dividend/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Install shell completion before flags are parsed. Complete exits the
	// process when invoked by the shell completion hook.
	completion().Complete("dvd")

	flag.Parse()

	// Unknown subcommands are routed to dvd-<name> binaries found in PATH.
	if name := flag.Arg(0); name != "" && !cmd.Known(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	report := &complete.Command{
		Flags: map[string]complete.Predictor{
			"y":     predict.Nothing,
			"basis": predict.Set{"posttax", "pretax"},
		},
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"monthly":  report,
			"calendar": report,
			"owner": {
				Flags: map[string]complete.Predictor{
					"o":        predict.Nothing,
					"accounts": predict.Nothing,
					"y":        predict.Nothing,
					"m":        predict.Nothing,
					"basis":    predict.Set{"posttax", "pretax"},
				},
			},
			"growth": {
				Flags: map[string]complete.Predictor{
					"basis": predict.Set{"posttax", "pretax"},
				},
			},
			"fire": {
				Flags: map[string]complete.Predictor{
					"goal": predict.Nothing,
					"y":    predict.Nothing,
				},
			},
			"topic": {Args: predict.Set{"readme", "format", "amounts", "fire"}},
		},
		Flags: map[string]complete.Predictor{
			"workbook-file": predict.Files("*.xlsx"),
			"v":             predict.Nothing,
		},
	}
}
