package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fifo/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; a no-op outside of a completion request.
	ledgerFlags := map[string]complete.Predictor{
		"i": predict.Files("*.csv"),
		"o": predict.Files("*.csv"),
	}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"process": {Flags: map[string]complete.Predictor{
				"i":        predict.Files("*.csv"),
				"sales":    predict.Files("*.csv"),
				"holdings": predict.Files("*.csv"),
				"lots":     predict.Nothing,
			}},
			"sales": {Flags: ledgerFlags},
			"holdings": {Flags: map[string]complete.Predictor{
				"i":    predict.Files("*.csv"),
				"o":    predict.Files("*.csv"),
				"lots": predict.Nothing,
			}},
			"check": {Flags: map[string]complete.Predictor{"i": predict.Files("*.csv")}},
		},
	}
	completion.Complete("fifo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
