package fifo

import "sort"

// Lot is a discrete purchased quantity of a security, tracked at its own
// unit cost basis until fully sold.
type Lot struct {
	Code      string
	Date      Date     // acquisition date
	Remaining Quantity // units not yet consumed by a sale
	UnitCost  Money    // purchase price plus allocated purchase fee, per unit
}

// CostBasis returns the cost basis of the remaining units.
func (l Lot) CostBasis() Money { return l.UnitCost.Mul(l.Remaining) }

// consumption records units taken from a single lot during one sale.
type consumption struct {
	lot      Lot // state of the lot before this consumption
	quantity Quantity
}

// lotLedger keeps one FIFO queue of open lots per security code.
// Insertion order is consumption order.
type lotLedger struct {
	queues map[string][]Lot
}

func newLotLedger() *lotLedger {
	return &lotLedger{queues: make(map[string][]Lot)}
}

// append adds a newly purchased lot to the back of its security's queue.
func (l *lotLedger) append(lot Lot) {
	l.queues[lot.Code] = append(l.queues[lot.Code], lot)
}

// open returns the total remaining quantity for a security.
func (l *lotLedger) open(code string) Quantity {
	total := Q(0)
	for _, lot := range l.queues[code] {
		total = total.Add(lot.Remaining)
	}
	return total
}

// consume removes quantity units from the front of the security's queue,
// across as many lots as needed. It returns the ordered consumptions, summing
// exactly to quantity.
//
// When the open quantity is short (a never-bought security counts as zero
// open), it returns an InsufficientLotsError and leaves the ledger untouched.
func (l *lotLedger) consume(code string, quantity Quantity) ([]consumption, error) {
	if open := l.open(code); open.LessThan(quantity) {
		return nil, &InsufficientLotsError{Code: code, Requested: quantity, Open: open}
	}

	var taken []consumption
	left := quantity
	queue := l.queues[code]
	for len(queue) > 0 && left.IsPositive() {
		front := queue[0]
		take := front.Remaining.Min(left)
		taken = append(taken, consumption{lot: front, quantity: take})

		front.Remaining = front.Remaining.Sub(take)
		left = left.Sub(take)
		if front.Remaining.IsZero() {
			queue = queue[1:] // fully depleted lots are dropped
		} else {
			queue[0] = front
		}
	}
	l.queues[code] = queue
	return taken, nil
}

// snapshot returns the current non-empty lots for all securities, codes in
// lexical order, lots in acquisition order. Read-only.
func (l *lotLedger) snapshot() []Lot {
	codes := make([]string, 0, len(l.queues))
	for code, queue := range l.queues {
		if len(queue) > 0 {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	var all []Lot
	for _, code := range codes {
		all = append(all, l.queues[code]...)
	}
	return all
}
