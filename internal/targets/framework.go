package targets

import (
	"fmt"
	"strings"
)

// Framework is a science-based target preset.
type Framework struct {
	Name                      string  `json:"name"           yaml:"name"`
	ReductionBy2030           float64 `json:"reduction_by_2030" yaml:"reduction_by_2030"`
	AnnualReductionPercentage float64 `json:"annual_reduction" yaml:"annual_reduction"`
	NetZeroYear               int     `json:"net_zero_year"  yaml:"net_zero_year"`
}

// Preset names.
const (
	FrameworkParis       = "Paris-Aligned (1.5°C)"
	FrameworkWellBelow2C = "Well Below 2°C"
	Framework2C          = "2°C"
	FrameworkCustom      = "Custom"
)

// MilestoneYear is the interim year the presets' percentage refers to.
const MilestoneYear = 2030

// Frameworks returns the built-in presets.
func Frameworks() []Framework {
	return []Framework{
		{Name: FrameworkParis, ReductionBy2030: 42, AnnualReductionPercentage: 4.2, NetZeroYear: 2050},
		{Name: FrameworkWellBelow2C, ReductionBy2030: 35, AnnualReductionPercentage: 3.5, NetZeroYear: 2060},
		{Name: Framework2C, ReductionBy2030: 25, AnnualReductionPercentage: 2.5, NetZeroYear: 2070},
	}
}

// frameworkAliases lets users type short names on the command line.
//
//nolint:gochecknoglobals // lookup table
var frameworkAliases = map[string]string{
	"paris":         FrameworkParis,
	"1.5c":          FrameworkParis,
	"well-below-2c": FrameworkWellBelow2C,
	"wb2c":          FrameworkWellBelow2C,
	"2c":            Framework2C,
}

// ParseFramework resolves a preset by full name or alias.
func ParseFramework(name string) (Framework, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if full, ok := frameworkAliases[key]; ok {
		key = strings.ToLower(full)
	}
	for _, f := range Frameworks() {
		if strings.ToLower(f.Name) == key {
			return f, nil
		}
	}
	return Framework{}, fmt.Errorf("%w: %q", ErrUnknownFramework, name)
}

// Policy returns the compounding policy for the framework's 2030 milestone.
func (f Framework) Policy(baseEmissions float64, baseYear int) Policy {
	return Policy{
		BaseEmissions:       baseEmissions,
		ReductionPercentage: f.ReductionBy2030,
		BaseYear:            baseYear,
		TargetYear:          MilestoneYear,
	}
}

// Pathway returns the linear net-zero policy for the framework.
func (f Framework) Pathway(baseEmissions float64, startYear int) LinearPolicy {
	return LinearPolicy{
		BaseEmissions:             baseEmissions,
		AnnualReductionPercentage: f.AnnualReductionPercentage,
		StartYear:                 startYear,
		NetZeroYear:               f.NetZeroYear,
	}
}
