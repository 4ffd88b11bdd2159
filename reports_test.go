package fifo

import (
	"strings"
	"testing"
	"time"
)

func TestSalesReportTotals(t *testing.T) {
	result := process(t,
		buy(NewDate(2024, time.January, 10), "AAPL", 10, 150, 5),
		buy(NewDate(2024, time.February, 10), "AAPL", 5, 160, 5),
		sell(NewDate(2024, time.March, 10), "AAPL", 12, 175, 6),
	)

	report := result.SalesReport()
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
	if !report.TotalProceeds.Equal(usd(2100)) { // 12 * 175
		t.Errorf("total proceeds = %s, want 2100.00", report.TotalProceeds)
	}
	if !report.TotalFees.Equal(usd(6)) {
		t.Errorf("total fees = %s, want 6.00", report.TotalFees)
	}
	if !report.TotalCost.Equal(usd(1827)) { // 1505 + 322
		t.Errorf("total cost = %s, want 1827.00", report.TotalCost)
	}
	if !report.TotalGain.Equal(usd(267)) { // 240 + 27
		t.Errorf("total gain = %s, want 267.00", report.TotalGain)
	}
}

func TestHoldingsReportAggregatesPerSecurity(t *testing.T) {
	result := process(t,
		buy(NewDate(2024, time.January, 2), "AAPL", 10, 100, 0),
		buy(NewDate(2024, time.February, 2), "AAPL", 10, 200, 0),
		buy(NewDate(2024, time.March, 2), "MSFT", 4, 400, 0),
	)

	report := result.HoldingsReport()
	if len(report.Securities) != 2 {
		t.Fatalf("expected 2 securities, got %d", len(report.Securities))
	}

	// Codes in lexical order.
	aapl, msft := report.Securities[0], report.Securities[1]
	if aapl.Code != "AAPL" || msft.Code != "MSFT" {
		t.Fatalf("securities not in lexical order: %s, %s", aapl.Code, msft.Code)
	}

	if !aapl.Quantity.Equal(Q(20)) {
		t.Errorf("AAPL quantity = %s, want 20", aapl.Quantity)
	}
	if !aapl.AvgUnitCost.Equal(usd(150)) { // (10*100 + 10*200) / 20
		t.Errorf("AAPL average unit cost = %s, want 150.00", aapl.AvgUnitCost)
	}
	if !aapl.CostBasis.Equal(usd(3000)) {
		t.Errorf("AAPL cost basis = %s, want 3000.00", aapl.CostBasis)
	}
	if !report.TotalCost.Equal(usd(4600)) { // 3000 + 1600
		t.Errorf("total cost = %s, want 4600.00", report.TotalCost)
	}

	// The per-lot detail is preserved for the detailed view.
	if len(report.Lots) != 3 {
		t.Errorf("expected 3 open lots, got %d", len(report.Lots))
	}
}

func TestHoldingsReportSkipsClosedPositions(t *testing.T) {
	result := process(t,
		buy(NewDate(2024, time.January, 2), "AAPL", 10, 100, 0),
		sell(NewDate(2024, time.February, 2), "AAPL", 10, 120, 0),
		buy(NewDate(2024, time.March, 2), "MSFT", 1, 400, 0),
	)

	report := result.HoldingsReport()
	if len(report.Securities) != 1 || report.Securities[0].Code != "MSFT" {
		t.Errorf("fully sold securities must not appear in holdings, got %+v", report.Securities)
	}
}

func TestSalesReportCarriesFailures(t *testing.T) {
	result := process(t,
		sell(NewDate(2024, time.January, 2), "AAPL", 1, 100, 0),
	)

	report := result.SalesReport()
	if len(report.Failures) != 1 {
		t.Fatalf("expected the failed sell on the report, got %d failures", len(report.Failures))
	}
	if !strings.Contains(report.Failures[0].Err.Error(), "only 0 open") {
		t.Errorf("unexpected failure message: %v", report.Failures[0].Err)
	}
}
