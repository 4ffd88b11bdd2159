package fifo

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func usd[T float32 | float64 | int](v T) Money { return M(v, "USD") }

func TestConsumeFIFOAcrossLots(t *testing.T) {
	g := NewGomegaWithT(t)

	l := newLotLedger()
	l.append(Lot{Code: "AAPL", Date: NewDate(2024, time.January, 2), Remaining: Q(10), UnitCost: usd(150.5)})
	l.append(Lot{Code: "AAPL", Date: NewDate(2024, time.February, 2), Remaining: Q(5), UnitCost: usd(161)})

	taken, err := l.consume("AAPL", Q(12))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(taken).To(HaveLen(2))

	// Oldest lot first, fully depleted; then 2 units from the second lot.
	g.Expect(taken[0].lot.Date).To(Equal(NewDate(2024, time.January, 2)))
	g.Expect(taken[0].quantity.Equal(Q(10))).To(BeTrue())
	g.Expect(taken[1].lot.Date).To(Equal(NewDate(2024, time.February, 2)))
	g.Expect(taken[1].quantity.Equal(Q(2))).To(BeTrue())

	// The depleted lot is dropped, the split lot keeps its unit cost.
	remaining := l.snapshot()
	g.Expect(remaining).To(HaveLen(1))
	g.Expect(remaining[0].Remaining.Equal(Q(3))).To(BeTrue())
	g.Expect(remaining[0].UnitCost.Equal(usd(161))).To(BeTrue())
}

func TestConsumeExactLot(t *testing.T) {
	g := NewGomegaWithT(t)

	l := newLotLedger()
	l.append(Lot{Code: "VT", Date: NewDate(2024, time.March, 1), Remaining: Q(7), UnitCost: usd(100)})

	taken, err := l.consume("VT", Q(7))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(taken).To(HaveLen(1))
	g.Expect(l.snapshot()).To(BeEmpty())
	g.Expect(l.open("VT").IsZero()).To(BeTrue())
}

func TestConsumeInsufficientLeavesLedgerUntouched(t *testing.T) {
	g := NewGomegaWithT(t)

	l := newLotLedger()
	l.append(Lot{Code: "AAPL", Date: NewDate(2024, time.January, 2), Remaining: Q(10), UnitCost: usd(150)})

	taken, err := l.consume("AAPL", Q(11))
	g.Expect(taken).To(BeNil())

	var insufficient *InsufficientLotsError
	g.Expect(err).To(BeAssignableToTypeOf(insufficient))
	insufficient = err.(*InsufficientLotsError)
	g.Expect(insufficient.Code).To(Equal("AAPL"))
	g.Expect(insufficient.Requested.Equal(Q(11))).To(BeTrue())
	g.Expect(insufficient.Open.Equal(Q(10))).To(BeTrue())

	// A failed consume must not mutate any lot.
	remaining := l.snapshot()
	g.Expect(remaining).To(HaveLen(1))
	g.Expect(remaining[0].Remaining.Equal(Q(10))).To(BeTrue())
}

func TestConsumeUnknownSecurity(t *testing.T) {
	g := NewGomegaWithT(t)

	l := newLotLedger()
	_, err := l.consume("NVDA", Q(1))

	// Never-bought security is the zero-open case of the same error.
	var insufficient *InsufficientLotsError
	g.Expect(err).To(BeAssignableToTypeOf(insufficient))
	g.Expect(err.(*InsufficientLotsError).Open.IsZero()).To(BeTrue())
}

func TestSnapshotOrdersCodesAndKeepsAcquisitionOrder(t *testing.T) {
	g := NewGomegaWithT(t)

	l := newLotLedger()
	l.append(Lot{Code: "MSFT", Date: NewDate(2024, time.May, 1), Remaining: Q(1), UnitCost: usd(400)})
	l.append(Lot{Code: "AAPL", Date: NewDate(2024, time.June, 1), Remaining: Q(2), UnitCost: usd(190)})
	l.append(Lot{Code: "AAPL", Date: NewDate(2024, time.April, 1), Remaining: Q(3), UnitCost: usd(170)})

	snapshot := l.snapshot()
	g.Expect(snapshot).To(HaveLen(3))
	g.Expect(snapshot[0].Code).To(Equal("AAPL"))
	g.Expect(snapshot[0].Date).To(Equal(NewDate(2024, time.June, 1))) // insertion order, not date order
	g.Expect(snapshot[1].Code).To(Equal("AAPL"))
	g.Expect(snapshot[2].Code).To(Equal("MSFT"))
}
