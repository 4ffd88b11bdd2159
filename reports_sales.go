package fifo

import (
	"github.com/samber/lo"
)

// SalesReport is the realized-gain report: one row per sale match, with the
// run totals, plus the transactions that could not be processed. It is a
// pure projection of the matching result.
type SalesReport struct {
	Rows     []Match
	Failures []Failure

	TotalProceeds Money
	TotalFees     Money
	TotalCost     Money
	TotalGain     Money
}

// SalesReport builds the realized-gain report from the matching result.
func (r *Result) SalesReport() *SalesReport {
	report := &SalesReport{
		Rows:     r.Matches,
		Failures: r.Failures,
	}
	report.TotalProceeds = lo.Reduce(r.Matches, func(acc Money, m Match, _ int) Money {
		return acc.Add(m.Proceeds)
	}, Money{})
	report.TotalFees = lo.Reduce(r.Matches, func(acc Money, m Match, _ int) Money {
		return acc.Add(m.Fee)
	}, Money{})
	report.TotalCost = lo.Reduce(r.Matches, func(acc Money, m Match, _ int) Money {
		return acc.Add(m.CostBasis)
	}, Money{})
	report.TotalGain = lo.Reduce(r.Matches, func(acc Money, m Match, _ int) Money {
		return acc.Add(m.Gain)
	}, Money{})
	return report
}
