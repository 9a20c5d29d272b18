package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FairnessRules holds the tenant-adjustable rule toggles read by the
// fairness evaluator. Policy lives here, never as constants in the services.
type FairnessRules struct {
	// MinTenureDays is the minimum tenure before a participant can enter a
	// monthly day-off draw.
	MinTenureDays int `yaml:"min_tenure_days" json:"min_tenure_days"`

	// BlockSameMonthAsVacation skips participants whose vacation overlaps the
	// target month.
	BlockSameMonthAsVacation bool `yaml:"block_same_month_as_vacation" json:"block_same_month_as_vacation"`

	// SplitVacationFairnessRule: when a vacation spans two months, only the
	// month holding the majority of the vacation days blocks the day-off.
	SplitVacationFairnessRule bool `yaml:"split_vacation_fairness_rule" json:"split_vacation_fairness_rule"`

	// PrioritizeRelatives schedules linked relatives on the same date when
	// both are eligible.
	PrioritizeRelatives bool `yaml:"prioritize_relatives" json:"prioritize_relatives"`

	// BlockSameUnitLeaders prevents two leaders of the same unit from being
	// assigned on the same date.
	BlockSameUnitLeaders bool `yaml:"block_same_unit_leaders" json:"block_same_unit_leaders"`

	// FairDistribution enables the rotation-queue ordering; when off, the
	// pick scans in roster join order regardless of queue position.
	FairDistribution bool `yaml:"fair_distribution" json:"fair_distribution"`
}

// DefaultFairnessRules returns the documented defaults applied when no rules
// file is configured.
func DefaultFairnessRules() *FairnessRules {
	return &FairnessRules{
		MinTenureDays:             45,
		BlockSameMonthAsVacation:  true,
		SplitVacationFairnessRule: true,
		PrioritizeRelatives:       true,
		BlockSameUnitLeaders:      true,
		FairDistribution:          true,
	}
}

// LoadFairnessRules loads the tenant rules from a YAML file, falling back to
// defaults for any omitted field. An empty path returns the defaults.
func LoadFairnessRules(path string) (*FairnessRules, error) {
	rules := DefaultFairnessRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("error unmarshaling rules file: %w", err)
	}

	if rules.MinTenureDays < 0 {
		return nil, fmt.Errorf("min_tenure_days must not be negative")
	}

	return rules, nil
}
