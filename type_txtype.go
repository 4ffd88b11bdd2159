package fifo

import (
	"fmt"
	"strings"
)

// TxType identifies the side of a transaction.
type TxType int

const (
	// Buy acquires a new lot of a security.
	Buy TxType = iota
	// Sell disposes of previously acquired lots, oldest first.
	Sell
)

func (t TxType) String() string {
	switch t {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTxType parses a string into a TxType. Matching is case-insensitive.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}
