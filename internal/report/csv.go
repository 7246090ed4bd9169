package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// Header is the CSV header for the exported subscription table.
const Header = "description,amount,frequency,monthly_cost,category,last_charge"

const (
	numFields      = 6
	dateFormat     = "2006-01-02"
	colDesc        = 0
	colAmount      = 1
	colFrequency   = 2
	colMonthlyCost = 3
	colCategory    = 4
	colLastCharge  = 5
)

// WriteSubscriptions writes the subscription table as CSV (including header).
func WriteSubscriptions(w io.Writer, subs []model.Subscription) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, sub := range subs {
		if err := cw.Write(MarshalSubscription(sub)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadSubscriptions reads a subscription table CSV.
func ReadSubscriptions(r io.Reader) ([]model.Subscription, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading subscriptions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var subs []model.Subscription
	for i, rec := range records[1:] {
		sub, err := UnmarshalSubscription(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// MarshalSubscription converts a Subscription to a CSV row ([]string).
func MarshalSubscription(sub model.Subscription) []string {
	row := make([]string, numFields)
	row[colDesc] = sub.Description
	row[colAmount] = sub.Amount.StringFixed(2)
	row[colFrequency] = string(sub.Frequency)
	row[colMonthlyCost] = sub.MonthlyCost.StringFixed(2)
	row[colCategory] = string(sub.Category)
	row[colLastCharge] = sub.LastCharge.Format(dateFormat)
	return row
}

// UnmarshalSubscription converts a CSV row to a Subscription.
func UnmarshalSubscription(record []string) (model.Subscription, error) {
	if len(record) != numFields {
		return model.Subscription{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Subscription{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	monthlyCost, err := decimal.NewFromString(record[colMonthlyCost])
	if err != nil {
		return model.Subscription{}, fmt.Errorf("parsing monthly_cost %q: %w", record[colMonthlyCost], err)
	}

	lastCharge, err := time.Parse(dateFormat, record[colLastCharge])
	if err != nil {
		return model.Subscription{}, fmt.Errorf("parsing last_charge %q: %w", record[colLastCharge], err)
	}

	return model.Subscription{
		Description: record[colDesc],
		Amount:      amount,
		Frequency:   model.Frequency(record[colFrequency]),
		MonthlyCost: monthlyCost,
		Category:    model.Category(record[colCategory]),
		LastCharge:  lastCharge,
	}, nil
}
