package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// Summary holds the headline numbers for a detected subscription set.
type Summary struct {
	Count        int
	MonthlyTotal decimal.Decimal
	AnnualTotal  decimal.Decimal
}

// Summarize totals the monthly-equivalent cost of all subscriptions.
func Summarize(subs []model.Subscription) Summary {
	monthly := decimal.Zero
	for _, sub := range subs {
		monthly = monthly.Add(sub.MonthlyCost)
	}
	return Summary{
		Count:        len(subs),
		MonthlyTotal: monthly,
		AnnualTotal:  monthly.Mul(decimal.NewFromInt(12)),
	}
}

// RenderSummary writes the headline numbers as text.
func RenderSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "Subscriptions: %d\nMonthly spending: $%s\nAnnual spending: $%s\n",
		s.Count, s.MonthlyTotal.StringFixed(2), s.AnnualTotal.StringFixed(2))
	return err
}

// RenderTable writes the subscription table as aligned text.
func RenderTable(w io.Writer, subs []model.Subscription) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBSCRIPTION\tAMOUNT\tBILLING CYCLE\tMONTHLY COST\tCATEGORY\tLAST CHARGED")
	for _, sub := range subs {
		fmt.Fprintf(tw, "%s\t$%s\t%s\t$%s\t%s\t%s\n",
			sub.Description,
			sub.Amount.StringFixed(2),
			sub.Frequency,
			sub.MonthlyCost.StringFixed(2),
			sub.Category,
			sub.LastCharge.Format(dateFormat))
	}
	return tw.Flush()
}

// RenderOpportunities writes savings opportunities as a numbered list.
func RenderOpportunities(w io.Writer, opps []model.Opportunity) error {
	if len(opps) == 0 {
		_, err := fmt.Fprintln(w, "No savings opportunities identified.")
		return err
	}

	for i, opp := range opps {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, opp.Recommendation); err != nil {
			return err
		}
		switch opp.Type {
		case model.OpportunityDuplicateCategory:
			fmt.Fprintf(w, "   Category: %s\n", opp.Category)
			fmt.Fprintf(w, "   Subscriptions: %s\n", strings.Join(opp.Subscriptions, ", "))
			fmt.Fprintf(w, "   Monthly cost: $%s\n", opp.MonthlyCost.StringFixed(2))
		case model.OpportunityAnnualDiscount:
			fmt.Fprintf(w, "   Subscription: %s\n", opp.Subscription)
			fmt.Fprintf(w, "   Current monthly cost: $%s\n", opp.MonthlyCost.StringFixed(2))
			fmt.Fprintf(w, "   Annual savings: $%s\n", opp.AnnualSavings.StringFixed(2))
		}
	}
	return nil
}
