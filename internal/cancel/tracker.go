package cancel

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// Record is one canceled subscription.
type Record struct {
	Description   string
	MonthlyCost   decimal.Decimal
	AnnualSavings decimal.Decimal
	CanceledDate  time.Time
	Method        Method
}

// Tracker accumulates cancellations for the current session. Nothing is
// persisted; each run starts empty.
type Tracker struct {
	records []Record
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Mark records a subscription as canceled and returns the record.
func (t *Tracker) Mark(sub model.Subscription, method Method, when time.Time) Record {
	rec := Record{
		Description:   sub.Description,
		MonthlyCost:   sub.MonthlyCost,
		AnnualSavings: sub.MonthlyCost.Mul(decimal.NewFromInt(12)),
		CanceledDate:  when,
		Method:        method,
	}
	t.records = append(t.records, rec)
	return rec
}

// Records returns all cancellations recorded so far.
func (t *Tracker) Records() []Record {
	return t.records
}

// TotalAnnualSavings sums the annual savings across all cancellations.
func (t *Tracker) TotalAnnualSavings() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range t.records {
		total = total.Add(rec.AnnualSavings)
	}
	return total
}

// ReportHeader is the CSV header for the cancellation report.
const ReportHeader = "subscription,monthly_savings,annual_savings,canceled_date,method"

const (
	reportNumFields  = 5
	reportDateFormat = "2006-01-02"
)

// WriteReport writes cancellation records as CSV (including header).
func WriteReport(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ReportHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		row := make([]string, reportNumFields)
		row[0] = rec.Description
		row[1] = rec.MonthlyCost.StringFixed(2)
		row[2] = rec.AnnualSavings.StringFixed(2)
		row[3] = rec.CanceledDate.Format(reportDateFormat)
		row[4] = string(rec.Method)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
