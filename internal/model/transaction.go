package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a normalized bank statement row.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}
