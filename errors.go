package fifo

import (
	"fmt"
	"strings"
)

// ValidationError reports a transaction record that fails its domain
// constraints. The offending record is excluded from matching; the rest of
// the ledger is still processed.
type ValidationError struct {
	Row    int      // 1-based data row in the source file, 0 when unknown
	Fields []string // one message per violated field
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("invalid transaction on row %d: %s", e.Row, strings.Join(e.Fields, "; "))
	}
	return fmt.Sprintf("invalid transaction: %s", strings.Join(e.Fields, "; "))
}

// InsufficientLotsError reports a sell that exceeds the open quantity for a
// security. A security that was never bought is the zero-open-lots case of
// the same error. It signals a data-integrity problem in the input ledger
// and is never silently clamped.
type InsufficientLotsError struct {
	Code      string
	Requested Quantity
	Open      Quantity
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("cannot sell %s %s: only %s open", e.Requested, e.Code, e.Open)
}

// ReconciliationError reports that the per-lot allocations of one sale do
// not add back to the sale's totals within one minor currency unit. This is
// an internal invariant breach, not an input problem.
type ReconciliationError struct {
	Code string
	Kind string // "fee" or "cost"
	Want Money
	Got  Money
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s allocation for %s does not reconcile: want %s, got %s",
		e.Kind, e.Code, e.Want, e.Got)
}
