package fifo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file handles the transaction file format: a CSV with a header row
// naming the columns Date, Type, Code, Quantity, Price and Fees, in any
// order. It is the contract with whatever produced the ledger (broker
// export, spreadsheet).

// ledgerColumns are the required CSV columns, matched case-insensitively.
var ledgerColumns = []string{"Date", "Type", "Code", "Quantity", "Price", "Fees"}

// DecodeTransactions reads a transaction ledger in CSV format.
//
// Rows that cannot be parsed are collected as Failures (the row is excluded,
// the rest of the file is still read); only unreadable input or a missing
// column aborts the decode. Monetary columns are read in 'currency'.
func DecodeTransactions(r io.Reader, currency string) (*Ledger, []Failure, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, nil, err
	}

	ledger := NewLedger()
	var failures []Failure
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("cannot read CSV row %d: %w", row, err)
		}

		tx, err := parseTransaction(record, index, row, currency)
		if err != nil {
			failures = append(failures, Failure{Transaction: tx, Err: err})
			continue
		}
		ledger.Append(tx)
	}
	return ledger, failures, nil
}

// columnIndex maps each required column to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(ledgerColumns))
	for i, name := range header {
		for _, want := range ledgerColumns {
			if strings.EqualFold(strings.TrimSpace(name), want) {
				index[want] = i
			}
		}
	}
	var missing []string
	for _, want := range ledgerColumns {
		if _, ok := index[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("ledger file is missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

// parseTransaction builds a typed transaction from one CSV record. The
// returned transaction is partially filled when err is not nil, so failures
// can still be reported with their row and raw content.
func parseTransaction(record []string, index map[string]int, row int, currency string) (Transaction, error) {
	field := func(name string) string { return strings.TrimSpace(record[index[name]]) }

	var fields []string
	on, err := ParseDate(field("Date"))
	if err != nil {
		fields = append(fields, err.Error())
	}
	side, err := ParseTxType(field("Type"))
	if err != nil {
		fields = append(fields, err.Error())
	}
	quantity, err := decimal.NewFromString(field("Quantity"))
	if err != nil {
		fields = append(fields, fmt.Sprintf("invalid quantity %q", field("Quantity")))
	}
	price, err := decimal.NewFromString(field("Price"))
	if err != nil {
		fields = append(fields, fmt.Sprintf("invalid price %q", field("Price")))
	}
	fees, err := decimal.NewFromString(field("Fees"))
	if err != nil {
		fields = append(fields, fmt.Sprintf("invalid fees %q", field("Fees")))
	}

	tx := NewTransaction(on, side, field("Code"), Q(quantity), M(price, currency), M(fees, currency))
	tx.Row = row
	if len(fields) > 0 {
		return tx, &ValidationError{Row: row, Fields: fields}
	}
	return tx, nil
}
