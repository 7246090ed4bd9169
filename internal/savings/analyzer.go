package savings

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/subsaver-dev/subsaver/internal/config"
	"github.com/subsaver-dev/subsaver/internal/detect"
	"github.com/subsaver-dev/subsaver/internal/model"
)

// Analyzer derives savings opportunities from a detected subscription set.
type Analyzer struct {
	cfg config.SavingsConfig
}

// New creates an Analyzer with the given thresholds.
func New(cfg config.SavingsConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// NewDefault creates an Analyzer with the standard thresholds.
func NewDefault() *Analyzer {
	return New(config.Default().Savings)
}

// Opportunities returns duplicate-category and annual-discount
// recommendations for the given subscriptions. An empty subscription set
// yields an empty list.
func (a *Analyzer) Opportunities(subs []model.Subscription) []model.Opportunity {
	opps := a.duplicateCategories(subs)
	return append(opps, a.annualDiscounts(subs)...)
}

// duplicateCategories flags categories holding more than one subscription.
// Categories are visited in rule order so output is deterministic.
func (a *Analyzer) duplicateCategories(subs []model.Subscription) []model.Opportunity {
	byCategory := make(map[model.Category][]model.Subscription)
	for _, sub := range subs {
		byCategory[sub.Category] = append(byCategory[sub.Category], sub)
	}

	var opps []model.Opportunity
	for _, cat := range detect.Categories() {
		members := byCategory[cat]
		if len(members) < 2 {
			continue
		}

		descriptions := make([]string, len(members))
		total := decimal.Zero
		for i, sub := range members {
			descriptions[i] = sub.Description
			total = total.Add(sub.MonthlyCost)
		}

		opps = append(opps, model.Opportunity{
			Type:           model.OpportunityDuplicateCategory,
			Category:       cat,
			Subscriptions:  descriptions,
			MonthlyCost:    total,
			Recommendation: fmt.Sprintf("Consider consolidating %s subscriptions", cat),
		})
	}
	return opps
}

// annualDiscounts suggests switching monthly subscriptions to annual billing
// when the projected saving clears the materiality floor.
func (a *Analyzer) annualDiscounts(subs []model.Subscription) []model.Opportunity {
	rate := decimal.NewFromFloat(a.cfg.AnnualDiscountRate)
	floor := decimal.NewFromFloat(a.cfg.MinAnnualSavings)

	var opps []model.Opportunity
	for _, sub := range subs {
		if sub.Frequency != model.FrequencyMonthly {
			continue
		}

		saving := sub.MonthlyCost.Mul(decimal.NewFromInt(12)).Mul(rate)
		if !saving.GreaterThan(floor) {
			continue
		}

		opps = append(opps, model.Opportunity{
			Type:           model.OpportunityAnnualDiscount,
			Subscription:   sub.Description,
			MonthlyCost:    sub.MonthlyCost,
			AnnualSavings:  saving,
			Recommendation: fmt.Sprintf("Switch to annual billing to save ~$%s/year", saving.StringFixed(2)),
		})
	}
	return opps
}
