package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level subsaver.yaml configuration.
type Config struct {
	Detection DetectionConfig `yaml:"detection"`
	Savings   SavingsConfig   `yaml:"savings"`
}

// DetectionConfig tunes the recurrence analyzer.
type DetectionConfig struct {
	// GapToleranceDays is how far an individual charge gap may drift from the
	// mean gap before the group is rejected as irregular.
	GapToleranceDays int `yaml:"gap_tolerance_days"`
	MonthlyMinDays   int `yaml:"monthly_min_days"`
	MonthlyMaxDays   int `yaml:"monthly_max_days"`
	AnnualMinDays    int `yaml:"annual_min_days"`
	AnnualMaxDays    int `yaml:"annual_max_days"`
}

// SavingsConfig tunes the opportunity analyzer.
type SavingsConfig struct {
	// AnnualDiscountRate is the assumed discount for prepaying a year.
	AnnualDiscountRate float64 `yaml:"annual_discount_rate"`
	// MinAnnualSavings suppresses annual-discount recommendations below this
	// amount to avoid noise on trivial subscriptions.
	MinAnnualSavings float64 `yaml:"min_annual_savings"`
}

// Load reads a subsaver.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard detection windows and savings
// thresholds.
func Default() *Config {
	return &Config{
		Detection: DetectionConfig{
			GapToleranceDays: 5,
			MonthlyMinDays:   25,
			MonthlyMaxDays:   35,
			AnnualMinDays:    350,
			AnnualMaxDays:    380,
		},
		Savings: SavingsConfig{
			AnnualDiscountRate: 0.15,
			MinAnnualSavings:   20,
		},
	}
}
