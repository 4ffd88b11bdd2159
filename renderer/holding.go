package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fifo"
)

// HoldingsMarkdown renders the holdings report as a markdown document,
// one row per security still held. With lots set, a per-lot breakdown is
// appended.
func HoldingsMarkdown(report *fifo.HoldingsReport, lots bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings Report\n\n")
	if len(report.Securities) == 0 {
		fmt.Fprintln(&b, "No open holdings.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Code | Quantity | Avg Unit Cost | Cost Basis |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, h := range report.Securities {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			h.Code,
			h.Quantity,
			h.AvgUnitCost,
			h.CostBasis,
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | **%s** |\n", report.TotalCost)

	if lots {
		fmt.Fprint(&b, "\n## Open Lots\n\n")
		fmt.Fprintln(&b, "| Code | Acquired | Remaining | Unit Cost | Cost Basis |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, l := range report.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				l.Code,
				l.Date,
				l.Remaining,
				l.UnitCost,
				l.CostBasis(),
			)
		}
	}
	return b.String()
}
