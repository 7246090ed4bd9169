package detect

import (
	"math"
	"sort"
	"time"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// cadence summarizes the spacing of a date-sorted series of charges.
type cadence struct {
	MeanGapDays float64
	Consistent  bool // every gap within the tolerance of the mean
}

// measureCadence computes gap statistics over dates sorted ascending.
// Returns ok=false when fewer than two dates are given.
func measureCadence(dates []time.Time, toleranceDays int) (cadence, bool) {
	if len(dates) < 2 {
		return cadence{}, false
	}

	gaps := make([]float64, 0, len(dates)-1)
	total := 0.0
	for i := 1; i < len(dates); i++ {
		gap := dates[i].Sub(dates[i-1]).Hours() / 24
		gaps = append(gaps, gap)
		total += gap
	}
	mean := total / float64(len(gaps))

	consistent := true
	for _, gap := range gaps {
		if math.Abs(gap-mean) > float64(toleranceDays) {
			consistent = false
			break
		}
	}

	return cadence{MeanGapDays: mean, Consistent: consistent}, true
}

// RecurringCandidates returns one representative transaction (the earliest)
// for each (description, amount) group that repeats at a consistent monthly
// or annual interval. Groups with a single occurrence are never emitted.
func (d *Detector) RecurringCandidates(txns []model.Transaction) []model.Transaction {
	groups := make(map[string][]model.Transaction)
	var order []string
	for _, txn := range txns {
		key := txn.Description + "\x00" + txn.Amount.String()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], txn)
	}

	var candidates []model.Transaction
	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		sortByDate(group)

		cad, ok := measureCadence(transactionDates(group), d.cfg.GapToleranceDays)
		if !ok || !cad.Consistent {
			continue
		}
		if !d.inMonthlyWindow(cad.MeanGapDays) && !d.inAnnualWindow(cad.MeanGapDays) {
			continue
		}
		candidates = append(candidates, group[0])
	}
	return candidates
}

func (d *Detector) inMonthlyWindow(meanGapDays float64) bool {
	return meanGapDays >= float64(d.cfg.MonthlyMinDays) && meanGapDays <= float64(d.cfg.MonthlyMaxDays)
}

func (d *Detector) inAnnualWindow(meanGapDays float64) bool {
	return meanGapDays >= float64(d.cfg.AnnualMinDays) && meanGapDays <= float64(d.cfg.AnnualMaxDays)
}

func sortByDate(txns []model.Transaction) {
	sort.Slice(txns, func(i, j int) bool { return txns[i].Date.Before(txns[j].Date) })
}

func transactionDates(txns []model.Transaction) []time.Time {
	dates := make([]time.Time, len(txns))
	for i, txn := range txns {
		dates[i] = txn.Date
	}
	return dates
}
