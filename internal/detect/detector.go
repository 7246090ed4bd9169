package detect

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/subsaver-dev/subsaver/internal/config"
	"github.com/subsaver-dev/subsaver/internal/model"
)

// Detector runs the subscription detection pipeline over a transaction batch.
type Detector struct {
	cfg config.DetectionConfig
}

// New creates a Detector with the given detection windows.
func New(cfg config.DetectionConfig) *Detector {
	return &Detector{cfg: cfg}
}

// NewDefault creates a Detector with the standard detection windows.
func NewDefault() *Detector {
	return New(config.Default().Detection)
}

// Detect returns one Subscription per distinct description flagged by either
// the keyword matcher or the recurrence analyzer. Results are sorted by
// description. The same cadence measurement feeds both candidate filtering
// and cost computation, so the two can never disagree on edge-case data.
func (d *Detector) Detect(txns []model.Transaction) []model.Subscription {
	flagged := make(map[string]bool)
	for _, txn := range KeywordMatches(txns) {
		flagged[txn.Description] = true
	}
	for _, txn := range d.RecurringCandidates(txns) {
		flagged[txn.Description] = true
	}

	// Collect every occurrence of each flagged description, dropping exact
	// duplicate rows so repeated candidates cannot distort the gap math.
	occurrences := make(map[string][]model.Transaction)
	seen := make(map[string]bool)
	for _, txn := range txns {
		if !flagged[txn.Description] {
			continue
		}
		key := txn.Date.Format("2006-01-02") + "\x00" + txn.Description + "\x00" + txn.Amount.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		occurrences[txn.Description] = append(occurrences[txn.Description], txn)
	}

	subs := make([]model.Subscription, 0, len(occurrences))
	for desc, group := range occurrences {
		sortByDate(group)
		subs = append(subs, d.buildSubscription(desc, group))
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Description < subs[j].Description })
	return subs
}

// buildSubscription classifies the billing frequency of a date-sorted
// occurrence group and normalizes its cost to a 30-day equivalent.
func (d *Detector) buildSubscription(desc string, group []model.Transaction) model.Subscription {
	latest := group[len(group)-1]
	sub := model.Subscription{
		Description: desc,
		Amount:      latest.Amount,
		Category:    Categorize(desc),
		LastCharge:  latest.Date,
	}

	cad, ok := measureCadence(transactionDates(group), d.cfg.GapToleranceDays)
	switch {
	case !ok, cad.MeanGapDays <= 0:
		// Single occurrence or duplicate-dated charges: no interval to
		// normalize against.
		sub.Frequency = model.FrequencyUnknown
		sub.MonthlyCost = latest.Amount
	case d.inMonthlyWindow(cad.MeanGapDays):
		sub.Frequency = model.FrequencyMonthly
		sub.MonthlyCost = latest.Amount
	case d.inAnnualWindow(cad.MeanGapDays):
		sub.Frequency = model.FrequencyAnnual
		sub.MonthlyCost = latest.Amount.Div(decimal.NewFromInt(12))
	default:
		sub.Frequency = model.CustomFrequency(cad.MeanGapDays)
		sub.MonthlyCost = latest.Amount.Mul(decimal.NewFromFloat(30 / cad.MeanGapDays))
	}
	return sub
}
