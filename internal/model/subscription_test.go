package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomFrequency(t *testing.T) {
	assert.Equal(t, Frequency("every 14 days"), CustomFrequency(14))
	assert.Equal(t, Frequency("every 15 days"), CustomFrequency(14.5), "rounds to nearest day")
	assert.Equal(t, Frequency("every 90 days"), CustomFrequency(90.2))
}

func TestAnnualCost(t *testing.T) {
	sub := Subscription{MonthlyCost: decimal.RequireFromString("15.49")}
	assert.True(t, sub.AnnualCost().Equal(decimal.RequireFromString("185.88")))
}
