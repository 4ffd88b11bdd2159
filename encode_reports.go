package fifo

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV export of the two reports, for carrying results into a spreadsheet or
// the next reporting period. Monetary cells are plain decimal numbers
// rounded to the currency's minor unit.

// EncodeSalesReport writes the realized-gain report as CSV.
func EncodeSalesReport(w io.Writer, report *SalesReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"SaleDate", "Code", "Quantity", "LotDate", "UnitCost", "CostBasis", "Proceeds", "Fee", "Gain", "LongTerm"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write sales report: %w", err)
	}
	for _, m := range report.Rows {
		record := []string{
			m.SaleDate.String(),
			m.Code,
			m.Quantity.String(),
			m.LotDate.String(),
			m.UnitCost.Round().Amount().String(),
			m.CostBasis.Round().Amount().String(),
			m.Proceeds.Round().Amount().String(),
			m.Fee.Round().Amount().String(),
			m.Gain.Round().Amount().String(),
			fmt.Sprintf("%t", m.LongTerm),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write sales report: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeHoldingsReport writes the holdings report as CSV, one row per
// security with nonzero remaining quantity.
func EncodeHoldingsReport(w io.Writer, report *HoldingsReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Code", "RemainingQuantity", "AverageUnitCost", "CostBasis"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write holdings report: %w", err)
	}
	for _, h := range report.Securities {
		record := []string{
			h.Code,
			h.Quantity.String(),
			h.AvgUnitCost.Round().Amount().String(),
			h.CostBasis.Round().Amount().String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write holdings report: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
