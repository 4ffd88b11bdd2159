package fifo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Transaction is a single validated buy or sell record from the input ledger.
//
// Price is the per-unit execution price, Fees the total fees charged on the
// transaction. Both are expressed in the run's reporting currency; the engine
// performs no currency conversion.
type Transaction struct {
	ID       string // assigned at ingestion, keys per-transaction failures
	Row      int    // 1-based data row in the source file, 0 when built in code
	Date     Date
	Type     TxType
	Code     string
	Quantity Quantity
	Price    Money
	Fees     Money
}

// NewTransaction builds a transaction with a fresh ID and a normalized
// security code.
func NewTransaction(on Date, t TxType, code string, quantity Quantity, price, fees Money) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Date:     on,
		Type:     t,
		Code:     strings.ToUpper(strings.TrimSpace(code)),
		Quantity: quantity,
		Price:    price,
		Fees:     fees,
	}
}

// NewBuy builds a buy transaction.
func NewBuy(on Date, code string, quantity Quantity, price, fees Money) Transaction {
	return NewTransaction(on, Buy, code, quantity, price, fees)
}

// NewSell builds a sell transaction.
func NewSell(on Date, code string, quantity Quantity, price, fees Money) Transaction {
	return NewTransaction(on, Sell, code, quantity, price, fees)
}

// Validate checks the transaction against its domain constraints and returns
// a ValidationError naming every violated field, or nil.
func (t Transaction) Validate() error {
	var fields []string
	if t.Date.IsZero() {
		fields = append(fields, "date is missing")
	}
	if t.Code == "" {
		fields = append(fields, "security code is missing")
	}
	switch {
	case !t.Quantity.IsPositive():
		fields = append(fields, fmt.Sprintf("quantity must be positive, got %s", t.Quantity))
	case !t.Quantity.IsInteger():
		fields = append(fields, fmt.Sprintf("quantity must be a whole number of units, got %s", t.Quantity))
	}
	if t.Price.IsNegative() {
		fields = append(fields, fmt.Sprintf("price must not be negative, got %s", t.Price))
	}
	if t.Fees.IsNegative() {
		fields = append(fields, fmt.Sprintf("fees must not be negative, got %s", t.Fees))
	}
	if len(fields) > 0 {
		return &ValidationError{Row: t.Row, Fields: fields}
	}
	return nil
}

// String returns a one-line description of the transaction.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s (fees %s)",
		t.Date, t.Type, t.Quantity, t.Code, t.Price, t.Fees)
}
