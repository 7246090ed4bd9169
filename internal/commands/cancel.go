package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/subsaver-dev/subsaver/internal/cancel"
	"github.com/subsaver-dev/subsaver/internal/report"
)

func newCancelCommand() *cobra.Command {
	var template string
	var phone bool
	var fromPath string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "cancel <service>...",
		Short: "Show cancellation options for a subscription",
		Long: `Show cancellation options for a subscription.

With --from, each argument names a subscription in the exported table
(detect --out) to mark as canceled; prints the savings and optionally
writes a cancellation report CSV.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromPath != "" {
				return runMarkCanceled(cmd.OutOrStdout(), fromPath, reportPath, args)
			}
			service := strings.Join(args, " ")
			return runCancel(cmd.OutOrStdout(), service, template, phone)
		},
	}

	cmd.Flags().StringVar(&template, "template", "standard", "email template (standard, refund, pause, negotiate)")
	cmd.Flags().BoolVar(&phone, "phone", false, "print a phone cancellation script instead of an email")
	cmd.Flags().StringVar(&fromPath, "from", "", "subscription table CSV to mark cancellations against")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a cancellation report CSV to this file (requires --from)")

	return cmd
}

func runCancel(w io.Writer, service, template string, phone bool) error {
	methods := cancel.Methods(service)
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}

	fmt.Fprintf(w, "Cancellation methods for %s: %s\n", service, strings.Join(names, ", "))
	fmt.Fprintf(w, "Cancellation URL: %s\n\n", cancel.URL(service))

	if phone {
		fmt.Fprintln(w, cancel.PhoneScript(service))
		return nil
	}

	tmpl, err := cancel.EmailTemplate(cancel.TemplateKind(template), service)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, tmpl)
	return nil
}

// runMarkCanceled marks the named subscriptions from an exported table as
// canceled and reports the savings. Nothing is persisted beyond the
// optional report file; each run starts from a fresh tracker.
func runMarkCanceled(w io.Writer, fromPath, reportPath string, services []string) error {
	f, err := os.Open(fromPath)
	if err != nil {
		return fmt.Errorf("opening subscription table: %w", err)
	}
	defer f.Close()

	subs, err := report.ReadSubscriptions(f)
	if err != nil {
		return err
	}

	tracker := cancel.NewTracker()
	now := time.Now()
	for _, service := range services {
		idx := -1
		for i, sub := range subs {
			if strings.EqualFold(sub.Description, service) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("no subscription %q in %s", service, fromPath)
		}

		rec := tracker.Mark(subs[idx], cancel.Methods(subs[idx].Description)[0], now)
		fmt.Fprintf(w, "Canceled %s: saves $%s/month, $%s/year\n",
			rec.Description, rec.MonthlyCost.StringFixed(2), rec.AnnualSavings.StringFixed(2))
	}

	fmt.Fprintf(w, "Total annual savings: $%s\n", tracker.TotalAnnualSavings().StringFixed(2))

	if reportPath != "" {
		out, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer out.Close()

		if err := cancel.WriteReport(out, tracker.Records()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(w, "Wrote cancellation report to %s\n", reportPath)
	}
	return nil
}
