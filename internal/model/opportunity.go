package model

import "github.com/shopspring/decimal"

// OpportunityType identifies the kind of savings opportunity.
type OpportunityType string

const (
	OpportunityDuplicateCategory OpportunityType = "duplicate_category"
	OpportunityAnnualDiscount    OpportunityType = "annual_discount"
)

// Opportunity is a recommendation derived from the current subscription set.
//
// For duplicate_category, Category, Subscriptions, and MonthlyCost are set;
// for annual_discount, Subscription, MonthlyCost, and AnnualSavings are set.
type Opportunity struct {
	Type           OpportunityType
	Recommendation string

	Category      Category
	Subscriptions []string
	MonthlyCost   decimal.Decimal

	Subscription  string
	AnnualSavings decimal.Decimal
}
