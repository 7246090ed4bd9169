package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// GenericParser parses bank statement CSVs whose columns are identified by
// header name rather than position. It recognizes common header variants
// across bank export formats.
type GenericParser struct{}

// columnAliases maps each required field to the header substrings that
// identify it.
var columnAliases = map[string][]string{
	"date":        {"date", "transaction date", "trans date", "posted date"},
	"description": {"description", "transaction", "details", "merchant", "name"},
	"amount":      {"amount", "transaction amount", "debit", "credit"},
}

// dateLayouts are tried in order when parsing date values.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02 Jan 2006",
}

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a statement CSV and returns Transactions. The whole batch
// fails on the first malformed row; no partial results are returned.
func (p *GenericParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	cols, err := detectColumns(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseGenericRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// columnMap holds the indexes of the required statement columns.
type columnMap struct {
	date        int
	description int
	amount      int
}

// detectColumns resolves header names to column indexes. The first header
// matching an alias wins for each field. Amount is matched before
// description so a "Transaction Amount" header is not taken for the
// description column.
func detectColumns(header []string) (columnMap, error) {
	cols := columnMap{date: -1, description: -1, amount: -1}
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if cols.date < 0 && matchesAlias(name, columnAliases["date"]) {
			cols.date = i
			continue
		}
		if cols.amount < 0 && matchesAlias(name, columnAliases["amount"]) {
			cols.amount = i
			continue
		}
		if cols.description < 0 && matchesAlias(name, columnAliases["description"]) {
			cols.description = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, "date")
	}
	if cols.description < 0 {
		missing = append(missing, "description")
	}
	if cols.amount < 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return columnMap{}, fmt.Errorf("statement missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func matchesAlias(name string, aliases []string) bool {
	for _, alias := range aliases {
		if strings.Contains(name, alias) {
			return true
		}
	}
	return false
}

func parseGenericRow(rec []string, cols columnMap) (model.Transaction, error) {
	max := cols.date
	if cols.description > max {
		max = cols.description
	}
	if cols.amount > max {
		max = cols.amount
	}
	if len(rec) <= max {
		return model.Transaction{}, fmt.Errorf("expected at least %d fields, got %d", max+1, len(rec))
	}

	date, err := parseDate(rec[cols.date])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := parseAmount(rec[cols.amount])
	if err != nil {
		return model.Transaction{}, err
	}

	desc := strings.TrimSpace(rec[cols.description])
	if desc == "" {
		return model.Transaction{}, fmt.Errorf("empty description")
	}

	return model.Transaction{
		Date:        date,
		Description: MaskPII(desc),
		Amount:      amount,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", value)
}

func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	return amount, nil
}
