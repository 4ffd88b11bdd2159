package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/fifo"
)

func usd(v float64) fifo.Money { return fifo.M(v, "USD") }

func run(t *testing.T, txs ...fifo.Transaction) *fifo.Result {
	t.Helper()
	ledger := fifo.NewLedger()
	ledger.Append(txs...)
	result, err := fifo.NewEngine().Process(ledger)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	return result
}

func TestSalesMarkdown(t *testing.T) {
	result := run(t,
		fifo.NewBuy(fifo.NewDate(2024, time.January, 10), "AAPL", fifo.Q(10), usd(150), usd(5)),
		fifo.NewSell(fifo.NewDate(2024, time.March, 10), "AAPL", fifo.Q(4), usd(175), usd(2)),
	)

	md := SalesMarkdown(result.SalesReport())

	if !strings.HasPrefix(md, "# Sales Report") {
		t.Errorf("missing title:\n%s", md)
	}
	if !strings.Contains(md, "| 2024-03-10 | AAPL | 4 | 2024-01-10 |") {
		t.Errorf("missing match row:\n%s", md)
	}
	if !strings.Contains(md, "**Total**") {
		t.Errorf("missing totals row:\n%s", md)
	}
	if strings.Contains(md, "Failed Transactions") {
		t.Errorf("no failures section expected:\n%s", md)
	}
}

func TestSalesMarkdownEmpty(t *testing.T) {
	result := run(t)
	md := SalesMarkdown(result.SalesReport())
	if !strings.Contains(md, "No sales were matched.") {
		t.Errorf("empty report should say so:\n%s", md)
	}
}

func TestSalesMarkdownListsFailures(t *testing.T) {
	result := run(t,
		fifo.NewSell(fifo.NewDate(2024, time.March, 10), "NVDA", fifo.Q(1), usd(900), usd(0)),
	)

	md := SalesMarkdown(result.SalesReport())
	if !strings.Contains(md, "## Failed Transactions") {
		t.Errorf("missing failures section:\n%s", md)
	}
	if !strings.Contains(md, "only 0 open") {
		t.Errorf("failure row should carry the error:\n%s", md)
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	result := run(t,
		fifo.NewBuy(fifo.NewDate(2024, time.January, 2), "AAPL", fifo.Q(10), usd(100), usd(0)),
		fifo.NewBuy(fifo.NewDate(2024, time.February, 2), "AAPL", fifo.Q(10), usd(200), usd(0)),
	)
	report := result.HoldingsReport()

	md := HoldingsMarkdown(report, false)
	if !strings.HasPrefix(md, "# Holdings Report") {
		t.Errorf("missing title:\n%s", md)
	}
	if !strings.Contains(md, "| AAPL | 20 |") {
		t.Errorf("missing aggregated row:\n%s", md)
	}
	if strings.Contains(md, "## Open Lots") {
		t.Errorf("lot breakdown must be opt-in:\n%s", md)
	}

	detailed := HoldingsMarkdown(report, true)
	if !strings.Contains(detailed, "## Open Lots") {
		t.Errorf("missing lot breakdown:\n%s", detailed)
	}
	if !strings.Contains(detailed, "| AAPL | 2024-01-02 | 10 |") {
		t.Errorf("missing lot row:\n%s", detailed)
	}
}
