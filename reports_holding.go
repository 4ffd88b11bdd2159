package fifo

import (
	"sort"

	"github.com/samber/lo"
)

// HoldingsReport lists what remains open after all sales, aggregated per
// security. The aggregated view is what carries into the next reporting
// period; Lots keeps the per-lot detail for the detailed view.
type HoldingsReport struct {
	Securities []SecurityHolding
	Lots       []Lot
	TotalCost  Money
}

// SecurityHolding is the aggregated open position of a single security.
type SecurityHolding struct {
	Code        string
	Quantity    Quantity
	AvgUnitCost Money // cost basis divided by remaining quantity
	CostBasis   Money
}

// HoldingsReport builds the holdings report from the lots left open at the
// end of the run.
func (r *Result) HoldingsReport() *HoldingsReport {
	report := &HoldingsReport{Lots: r.lots}

	byCode := lo.GroupBy(r.lots, func(l Lot) string { return l.Code })
	codes := lo.Keys(byCode)
	sort.Strings(codes)

	for _, code := range codes {
		lots := byCode[code]
		quantity := lo.Reduce(lots, func(acc Quantity, l Lot, _ int) Quantity {
			return acc.Add(l.Remaining)
		}, Q(0))
		cost := lo.Reduce(lots, func(acc Money, l Lot, _ int) Money {
			return acc.Add(l.CostBasis())
		}, Money{})

		report.Securities = append(report.Securities, SecurityHolding{
			Code:        code,
			Quantity:    quantity,
			AvgUnitCost: cost.Div(quantity),
			CostBasis:   cost,
		})
		report.TotalCost = report.TotalCost.Add(cost)
	}
	return report
}
