package fifo

import "slices"

// Ledger represents the full list of transactions for one run.
//
// Matching needs transactions in chronological order; Process sorts a copy
// with a stable sort, so transactions sharing a date keep their input order.
// That tie-break is deliberate and deterministic: it decides which lots a
// same-day sell draws from.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions to the ledger, preserving input order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transactions in input order.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// sorted returns a copy of the transactions in chronological order,
// input order breaking date ties.
func (l *Ledger) sorted() []Transaction {
	txs := slices.Clone(l.transactions)
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return txs
}
