package statement

import (
	"fmt"
	"strings"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// ValidationError describes a single malformed transaction row.
type ValidationError struct {
	Row     int // 1-based position in the batch
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
}

// Validate checks that every transaction carries the required fields. Any
// violation fails the whole batch; detection never runs on partial data.
func Validate(txns []model.Transaction) error {
	var errs []string
	for i, txn := range txns {
		if txn.Date.IsZero() {
			errs = append(errs, ValidationError{Row: i + 1, Field: "date", Message: "missing or unparseable"}.Error())
		}
		if strings.TrimSpace(txn.Description) == "" {
			errs = append(errs, ValidationError{Row: i + 1, Field: "description", Message: "empty"}.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("statement validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
