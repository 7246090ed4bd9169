package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Detection.GapToleranceDays = 7
	cfg.Savings.MinAnnualSavings = 50

	path := filepath.Join(t.TempDir(), "subsaver.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, got.Detection.GapToleranceDays)
	assert.Equal(t, cfg.Detection.MonthlyMinDays, got.Detection.MonthlyMinDays)
	assert.Equal(t, cfg.Detection.MonthlyMaxDays, got.Detection.MonthlyMaxDays)
	assert.Equal(t, cfg.Detection.AnnualMinDays, got.Detection.AnnualMinDays)
	assert.Equal(t, cfg.Detection.AnnualMaxDays, got.Detection.AnnualMaxDays)
	assert.InDelta(t, cfg.Savings.AnnualDiscountRate, got.Savings.AnnualDiscountRate, 0.001)
	assert.InDelta(t, 50, got.Savings.MinAnnualSavings, 0.001)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Detection.GapToleranceDays)
	assert.Equal(t, 25, cfg.Detection.MonthlyMinDays)
	assert.Equal(t, 35, cfg.Detection.MonthlyMaxDays)
	assert.Equal(t, 350, cfg.Detection.AnnualMinDays)
	assert.Equal(t, 380, cfg.Detection.AnnualMaxDays)
	assert.InDelta(t, 0.15, cfg.Savings.AnnualDiscountRate, 0.001)
	assert.InDelta(t, 20, cfg.Savings.MinAnnualSavings, 0.001)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subsaver.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "gap_tolerance_days: 5")
	assert.Contains(t, contents, "monthly_min_days: 25")
	assert.Contains(t, contents, "annual_discount_rate: 0.15")
	assert.Contains(t, contents, "min_annual_savings: 20")
}
