package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subsaver-dev/subsaver/internal/config"
	"github.com/subsaver-dev/subsaver/internal/detect"
	"github.com/subsaver-dev/subsaver/internal/model"
	"github.com/subsaver-dev/subsaver/internal/report"
	"github.com/subsaver-dev/subsaver/internal/savings"
	"github.com/subsaver-dev/subsaver/internal/statement"
)

func newDetectCommand() *cobra.Command {
	var format string
	var outPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "detect <statement.csv | directory>",
		Short: "Detect recurring subscriptions in a bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd.OutOrStdout(), args[0], format, outPath, configPath)
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "statement format (generic, chase)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the subscription table CSV to this file")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a subsaver.yaml")

	return cmd
}

func runDetect(w io.Writer, path, format, outPath, configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	registry := statement.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q (valid: %s)", format, strings.Join(registry.Formats(), ", "))
	}

	txns, err := loadTransactions(parser, path)
	if err != nil {
		return err
	}
	if err := statement.Validate(txns); err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	subs := detect.New(cfg.Detection).Detect(txns)
	opps := savings.New(cfg.Savings).Opportunities(subs)

	if err := report.RenderSummary(w, report.Summarize(subs)); err != nil {
		return err
	}
	if len(subs) > 0 {
		fmt.Fprintln(w)
		if err := report.RenderTable(w, subs); err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Savings opportunities:")
		if err := report.RenderOpportunities(w, opps); err != nil {
			return err
		}
	}

	if outPath != "" {
		if err := exportSubscriptions(outPath, subs); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nWrote subscription table to %s\n", outPath)
	}
	return nil
}

// loadTransactions parses a single statement file, or every CSV in a
// directory as one batch.
func loadTransactions(parser statement.Parser, path string) ([]model.Transaction, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("statement path: %w", err)
	}

	if !info.IsDir() {
		return parseFile(parser, path)
	}

	files, err := statement.Scan(path)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for _, file := range files {
		parsed, err := parseFile(parser, file.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name, err)
		}
		txns = append(txns, parsed...)
	}
	return txns, nil
}

func parseFile(parser statement.Parser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()
	return parser.Parse(f)
}

func exportSubscriptions(path string, subs []model.Subscription) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := report.WriteSubscriptions(f, subs); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
