package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency describes the billing cadence inferred for a subscription.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
	FrequencyUnknown Frequency = "unknown"
)

// CustomFrequency returns a Frequency for a billing interval that is neither
// monthly nor annual, e.g. "every 14 days".
func CustomFrequency(meanGapDays float64) Frequency {
	return Frequency(fmt.Sprintf("every %d days", int(math.Round(meanGapDays))))
}

// Category classifies a subscription by the kind of service it pays for.
type Category string

const (
	CategoryStreaming Category = "streaming"
	CategoryMusic     Category = "music"
	CategoryCloud     Category = "cloud"
	CategorySoftware  Category = "software"
	CategoryGaming    Category = "gaming"
	CategoryFitness   Category = "fitness"
	CategoryNews      Category = "news"
	CategoryOther     Category = "other"
)

// Subscription is one detected recurring charge, keyed by description.
// MonthlyCost is always the per-30-day-equivalent cost regardless of the
// underlying billing interval.
type Subscription struct {
	Description string
	Amount      decimal.Decimal // most recent charge
	Frequency   Frequency
	MonthlyCost decimal.Decimal
	Category    Category
	LastCharge  time.Time
}

// AnnualCost returns the projected yearly cost at the current monthly rate.
func (s Subscription) AnnualCost() decimal.Decimal {
	return s.MonthlyCost.Mul(decimal.NewFromInt(12))
}
