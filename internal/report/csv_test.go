package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsaver-dev/subsaver/internal/model"
)

func testSubs() []model.Subscription {
	return []model.Subscription{
		{
			Description: "NETFLIX.COM",
			Amount:      decimal.RequireFromString("15.49"),
			Frequency:   model.FrequencyMonthly,
			MonthlyCost: decimal.RequireFromString("15.49"),
			Category:    model.CategoryStreaming,
			LastCharge:  time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			Description: "ADOBE CREATIVE CLOUD",
			Amount:      decimal.RequireFromString("120.00"),
			Frequency:   model.FrequencyAnnual,
			MonthlyCost: decimal.RequireFromString("10.00"),
			Category:    model.CategorySoftware,
			LastCharge:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteSubscriptions(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSubscriptions(&buf, testSubs())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "NETFLIX.COM,15.49,monthly,15.49,streaming,2023-03-03", lines[1])
	assert.Equal(t, "ADOBE CREATIVE CLOUD,120.00,annual,10.00,software,2023-01-15", lines[2])
}

func TestReadSubscriptions_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSubscriptions(&buf, testSubs()))

	subs, err := ReadSubscriptions(&buf)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, "NETFLIX.COM", subs[0].Description)
	assert.Equal(t, model.FrequencyMonthly, subs[0].Frequency)
	assert.True(t, subs[0].MonthlyCost.Equal(decimal.RequireFromString("15.49")))
	assert.Equal(t, model.CategorySoftware, subs[1].Category)
}

func TestReadSubscriptions_BadRow(t *testing.T) {
	data := Header + "\nNETFLIX.COM,abc,monthly,15.49,streaming,2023-03-03\n"
	_, err := ReadSubscriptions(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestSummarize(t *testing.T) {
	s := Summarize(testSubs())
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.MonthlyTotal.Equal(decimal.RequireFromString("25.49")), "got %s", s.MonthlyTotal)
	assert.True(t, s.AnnualTotal.Equal(decimal.RequireFromString("305.88")), "got %s", s.AnnualTotal)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.MonthlyTotal.IsZero())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTable(&buf, testSubs())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NETFLIX.COM")
	assert.Contains(t, out, "$15.49")
	assert.Contains(t, out, "annual")

	header := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, header, "AMOUNT")
	assert.Contains(t, header, "LAST CHARGED")
	assert.NotContains(t, header, "LAST CHARGE\t", "charge amount column is AMOUNT, not LAST CHARGE")
}

func TestRenderOpportunities(t *testing.T) {
	opps := []model.Opportunity{
		{
			Type:           model.OpportunityDuplicateCategory,
			Category:       model.CategoryStreaming,
			Subscriptions:  []string{"NETFLIX.COM", "HULU.COM"},
			MonthlyCost:    decimal.RequireFromString("23.48"),
			Recommendation: "Consider consolidating streaming subscriptions",
		},
	}

	var buf bytes.Buffer
	err := RenderOpportunities(&buf, opps)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1. Consider consolidating streaming subscriptions")
	assert.Contains(t, out, "NETFLIX.COM, HULU.COM")
	assert.Contains(t, out, "$23.48")
}

func TestRenderOpportunities_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := RenderOpportunities(&buf, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No savings opportunities")
}
