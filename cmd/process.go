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

// processCmd holds the flags for the 'process' subcommand.
type processCmd struct {
	input    string
	sales    string
	holdings string
	lots     bool
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "match all sales against purchase lots and display both reports"
}
func (*processCmd) Usage() string {
	return `fifo process -i <ledger.csv> [-sales <file.csv>] [-holdings <file.csv>] [-lots]

  Runs the full FIFO matching pass over the transaction ledger and displays
  the realized-gain report and the remaining-holdings report. Rows that fail
  validation or oversell are listed after the reports; they never stop the
  run. Use -sales and -holdings to also export the reports as CSV.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Transaction ledger file (CSV), or '-' for stdin.")
	f.StringVar(&c.sales, "sales", "", "Also write the sales report to this CSV file.")
	f.StringVar(&c.holdings, "holdings", "", "Also write the holdings report to this CSV file.")
	f.BoolVar(&c.lots, "lots", false, "Show the per-lot breakdown in the holdings report.")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	salesReport := result.SalesReport()
	holdingsReport := result.HoldingsReport()

	if c.sales != "" {
		err := writeCSV(c.sales, func(w io.Writer) error { return fifo.EncodeSalesReport(w, salesReport) })
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if c.holdings != "" {
		err := writeCSV(c.holdings, func(w io.Writer) error { return fifo.EncodeHoldingsReport(w, holdingsReport) })
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SalesMarkdown(salesReport))
	printMarkdown(renderer.HoldingsMarkdown(holdingsReport, c.lots))

	return subcommands.ExitSuccess
}
