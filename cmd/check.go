package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	input string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a transaction ledger file without reporting" }
func (*checkCmd) Usage() string {
	return `fifo check -i <ledger.csv>

  Reads and validates the ledger file, listing every row that would be
  excluded from matching and every sell that would exceed its open lots.
  Exits with a failure status when any row is bad.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Transaction ledger file (CSV), or '-' for stdin.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if len(result.Failures) == 0 {
		fmt.Println("ledger is valid")
		return subcommands.ExitSuccess
	}
	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "row %d: %v\n", failure.Transaction.Row, failure.Err)
	}
	return subcommands.ExitFailure
}
