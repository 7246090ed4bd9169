package statement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsaver-dev/subsaver/internal/model"
)

func TestValidate_OK(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:        time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Description: "NETFLIX.COM",
			Amount:      decimal.RequireFromString("15.49"),
		},
	}
	assert.NoError(t, Validate(txns))
}

func TestValidate_Empty(t *testing.T) {
	assert.NoError(t, Validate(nil))
}

func TestValidate_MissingDate(t *testing.T) {
	txns := []model.Transaction{
		{Description: "NETFLIX.COM", Amount: decimal.RequireFromString("15.49")},
	}
	err := Validate(txns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	assert.Contains(t, err.Error(), "date")
}

func TestValidate_EmptyDescription(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Amount: decimal.RequireFromString("15.49"),
		},
	}
	err := Validate(txns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}
