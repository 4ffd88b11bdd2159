// Package cmd implements the CLI application to run FIFO lot matching on a
// transaction ledger file.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/etnz/fifo"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands returns the subcommands of the fifo tool.
// A main package registers them on a Commander and executes the selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&processCmd{},
		&salesCmd{},
		&holdingsCmd{},
		&checkCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// read the settings once into a global.

// settings are the environment-provided defaults, shared by all subcommands.
type settings struct {
	Currency string `env:"FIFO_CURRENCY" envDefault:"USD"`
	Verbose  bool   `env:"FIFO_VERBOSE" envDefault:"false"`
}

func loadSettings() (settings, error) {
	var s settings
	return s, env.Parse(&s)
}

// logger builds the CLI logger: warnings only, per-transaction debug when
// FIFO_VERBOSE is set.
func logger(s settings) zerolog.Logger {
	level := zerolog.WarnLevel
	if s.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// decodeLedger reads the transaction ledger from the given file, or from
// stdin when the name is "-".
func decodeLedger(name string, s settings) (*fifo.Ledger, []fifo.Failure, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open ledger file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return fifo.DecodeTransactions(r, s.Currency)
}

// run decodes the ledger and passes it through the matching engine. Rows
// rejected at decode time are merged into the result's failures so reports
// show every unprocessed row.
func run(input string, s settings) (*fifo.Result, error) {
	ledger, failures, err := decodeLedger(input, s)
	if err != nil {
		return nil, err
	}

	engine := fifo.NewEngine()
	engine.SetLogger(logger(s))
	result, err := engine.Process(ledger)
	if err != nil {
		return nil, err
	}
	result.Failures = append(failures, result.Failures...)
	return result, nil
}

// writeCSV writes one report file using the given encoder.
func writeCSV(name string, encode func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create report file: %w", err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", name)
	return nil
}
