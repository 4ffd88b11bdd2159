package fifo

import (
	"github.com/rs/zerolog"
)

// longTermDays is the holding period, in days, beyond which a realized gain
// is reported as long-term.
const longTermDays = 365

// Match records the part of one sale satisfied by a single purchase lot.
// A sale produces one Match per lot it draws from, in consumption order.
// Matches are immutable once emitted.
type Match struct {
	SaleID    string // ID of the sell transaction
	SaleDate  Date
	Code      string
	Quantity  Quantity // units matched from this lot
	LotDate   Date     // acquisition date of the consumed lot
	UnitCost  Money    // cost basis per unit of the consumed lot
	CostBasis Money    // cost basis consumed, rounded to the minor unit
	Proceeds  Money    // gross proceeds: sale price times matched quantity
	Fee       Money    // this match's share of the sale's total fees
	Gain      Money    // Proceeds - Fee - CostBasis
	LongTerm  bool     // held for more than a year
}

// Failure records a transaction that could not be processed, either because
// it failed validation or because it sold more than the open quantity.
type Failure struct {
	Transaction Transaction
	Err         error
}

// Result is the outcome of one matching run: the realized matches, the
// transactions that failed, and the lots still open at the end.
type Result struct {
	Matches  []Match
	Failures []Failure
	lots     []Lot
}

// Lots returns the open lots remaining after all sales, codes in lexical
// order, lots in acquisition order.
func (r *Result) Lots() []Lot { return r.lots }

// Engine performs the single chronological pass over a ledger, routing buys
// into per-security lot queues and sells through FIFO lot consumption.
//
// The pass is strictly sequential: every match depends on the lot state left
// by the transactions before it.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates an engine that logs nothing.
func NewEngine() *Engine {
	return &Engine{log: zerolog.Nop()}
}

// SetLogger sets the logger used for per-transaction diagnostics.
func (e *Engine) SetLogger(log zerolog.Logger) { e.log = log }

// Process runs the ledger through FIFO matching.
//
// Invalid records and failed sells are collected on the Result and do not
// stop the run. The only returned error is a ReconciliationError, which
// means the engine itself failed to conserve fees or cost within one minor
// currency unit.
func (e *Engine) Process(ledger *Ledger) (*Result, error) {
	result := &Result{}
	lots := newLotLedger()

	for _, tx := range ledger.sorted() {
		if err := tx.Validate(); err != nil {
			e.log.Warn().Str("id", tx.ID).Err(err).Msg("transaction rejected")
			result.Failures = append(result.Failures, Failure{Transaction: tx, Err: err})
			continue
		}

		switch tx.Type {
		case Buy:
			unitCost := tx.Price.Add(tx.Fees.Div(tx.Quantity))
			lots.append(Lot{Code: tx.Code, Date: tx.Date, Remaining: tx.Quantity, UnitCost: unitCost})
			e.log.Debug().Str("code", tx.Code).Stringer("quantity", tx.Quantity).
				Stringer("unitCost", unitCost).Msg("lot appended")

		case Sell:
			taken, err := lots.consume(tx.Code, tx.Quantity)
			if err != nil {
				e.log.Warn().Str("code", tx.Code).Err(err).Msg("sell failed")
				result.Failures = append(result.Failures, Failure{Transaction: tx, Err: err})
				continue
			}
			matches, err := e.settle(tx, taken)
			if err != nil {
				return nil, err
			}
			result.Matches = append(result.Matches, matches...)
		}
	}

	result.lots = lots.snapshot()
	e.log.Info().Int("matches", len(result.Matches)).
		Int("failures", len(result.Failures)).
		Int("openLots", len(result.lots)).Msg("matching done")
	return result, nil
}

// settle turns the lot consumptions of one sell into matches, apportioning
// the sale's fees and the consumed cost basis across them.
//
// Fees are allocated pro rata by matched quantity. Both the fee and cost
// allocations are rounded to the currency's minor unit with a running
// cumulative scheme: each match receives the rounded cumulative target minus
// what previous matches already received, so the shares add back to the
// totals exactly.
func (e *Engine) settle(tx Transaction, taken []consumption) ([]Match, error) {
	matches := make([]Match, 0, len(taken))

	cumQuantity := Q(0)
	feeAllocated := M(0, tx.Fees.Currency())
	costExact := M(0, tx.Price.Currency())
	costAllocated := M(0, tx.Price.Currency())

	for _, c := range taken {
		cumQuantity = cumQuantity.Add(c.quantity)

		feeTarget := tx.Fees.Mul(cumQuantity).Div(tx.Quantity).Round()
		fee := feeTarget.Sub(feeAllocated)
		feeAllocated = feeTarget

		costExact = costExact.Add(c.lot.UnitCost.Mul(c.quantity))
		costTarget := costExact.Round()
		cost := costTarget.Sub(costAllocated)
		costAllocated = costTarget

		proceeds := tx.Price.Mul(c.quantity)

		matches = append(matches, Match{
			SaleID:    tx.ID,
			SaleDate:  tx.Date,
			Code:      tx.Code,
			Quantity:  c.quantity,
			LotDate:   c.lot.Date,
			UnitCost:  c.lot.UnitCost,
			CostBasis: cost,
			Proceeds:  proceeds,
			Fee:       fee,
			Gain:      proceeds.Sub(fee).Sub(cost),
			LongTerm:  c.lot.Date.DaysUntil(tx.Date) > longTermDays,
		})
	}

	// Allocations must add back to the sale totals within one minor unit.
	// A breach here is a defect in the engine, not in the input.
	if diff := feeAllocated.Sub(tx.Fees).Abs(); diff.GreaterThan(tx.Fees.MinorUnit()) {
		return nil, &ReconciliationError{Code: tx.Code, Kind: "fee", Want: tx.Fees, Got: feeAllocated}
	}
	if diff := costAllocated.Sub(costExact).Abs(); diff.GreaterThan(costExact.MinorUnit()) {
		return nil, &ReconciliationError{Code: tx.Code, Kind: "cost", Want: costExact, Got: costAllocated}
	}
	return matches, nil
}
