package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	input  string
	output string
	lots   bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the remaining holdings after all sales" }
func (*holdingsCmd) Usage() string {
	return `fifo holdings -i <ledger.csv> [-o <file.csv>] [-lots]

  Displays what remains open after all sales, aggregated per security.
  Use -lots to break each position down into its remaining purchase lots.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Transaction ledger file (CSV), or '-' for stdin.")
	f.StringVar(&c.output, "o", "", "Also write the report to this CSV file.")
	f.BoolVar(&c.lots, "lots", false, "Show the per-lot breakdown.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "missing required -i flag")
		return subcommands.ExitUsageError
	}

	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := run(c.input, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := result.HoldingsReport()
	if c.output != "" {
		err := writeCSV(c.output, func(w io.Writer) error { return fifo.EncodeHoldingsReport(w, report) })
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.HoldingsMarkdown(report, c.lots))
	return subcommands.ExitSuccess
}
