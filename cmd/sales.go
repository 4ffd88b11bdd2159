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

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	input  string
	output string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display the realized-gain report" }
func (*salesCmd) Usage() string {
	return `fifo sales -i <ledger.csv> [-o <file.csv>]

  Displays the realized gains of every sale in the ledger, one row per
  purchase lot the sale drew from.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Transaction ledger file (CSV), or '-' for stdin.")
	f.StringVar(&c.output, "o", "", "Also write the report to this CSV file.")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := result.SalesReport()
	if c.output != "" {
		err := writeCSV(c.output, func(w io.Writer) error { return fifo.EncodeSalesReport(w, report) })
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SalesMarkdown(report))
	return subcommands.ExitSuccess
}
