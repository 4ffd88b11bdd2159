// Package fifo computes realized gains and remaining holdings from a
// chronological ledger of security buy and sell transactions, matching each
// sale against prior purchase lots first-in-first-out.
//
// The core functionalities include:
//   - Lot Ledger: one ordered queue of open purchase lots per security,
//     consumed from the front as sales occur.
//   - Matching Engine: a single chronological pass over the ledger that
//     routes buys into lots and sells through lot consumption, apportioning
//     fees pro rata and emitting one match per lot a sale draws from.
//   - Reports: two deterministic projections of the matching result, the
//     realized-gain (sales) report and the remaining-holdings report, with
//     failed rows reported alongside processed ones.
//   - Ingestion and export: decoding transaction ledgers from CSV and
//     writing both reports back out as CSV.
//
// All arithmetic is exact decimal; rounding happens only when allocating a
// sale's fees and cost across its matches, to the currency's minor unit.
// This package is the foundational logic for the `fifo` command-line tool.
package fifo
