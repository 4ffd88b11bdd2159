package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fifo"
)

// SalesMarkdown renders the realized-gain report as a markdown document,
// one row per sale match in consumption order.
func SalesMarkdown(report *fifo.SalesReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sales Report\n\n")
	if len(report.Rows) == 0 {
		fmt.Fprintln(&b, "No sales were matched.")
	} else {
		fmt.Fprintln(&b, "| Sale Date | Code | Qty | Lot Date | Cost Basis | Proceeds | Fee | Gain/Loss | Long Term |")
		fmt.Fprintln(&b, "|:---|:---|---:|:---|---:|---:|---:|---:|:---:|")
		for _, m := range report.Rows {
			longTerm := " "
			if m.LongTerm {
				longTerm = "X"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				m.SaleDate,
				m.Code,
				m.Quantity,
				m.LotDate,
				m.CostBasis,
				m.Proceeds,
				m.Fee,
				m.Gain.SignedString(),
				longTerm,
			)
		}
		fmt.Fprintf(&b, "| **Total** | | | | **%s** | **%s** | **%s** | **%s** | |\n",
			report.TotalCost,
			report.TotalProceeds,
			report.TotalFees,
			report.TotalGain.SignedString(),
		)
	}

	b.WriteString(FailuresMarkdown(report.Failures))
	return b.String()
}
