package targets

import (
	"fmt"
	"math"
)

// DefaultBaseYear is used when a policy does not name a base year.
const DefaultBaseYear = 2023

// percent is the scale between fractions and percentages.
const percent = 100.0

// Policy is a percentage reduction from BaseEmissions by TargetYear.
type Policy struct {
	BaseEmissions       float64
	ReductionPercentage float64
	BaseYear            int
	TargetYear          int
}

// Point is one year of a trajectory.
type Point struct {
	Year              int     `json:"year"`
	Emissions         float64 `json:"emissions"`
	ReductionFromBase float64 `json:"reduction_from_base"`
}

// Target is the result of ProjectCompounding.
type Target struct {
	BaseEmissions             float64 `json:"base_emissions"`
	TargetEmissions           float64 `json:"target_emissions"`
	ReductionPercentage       float64 `json:"reduction_percentage"`
	AnnualReductionPercentage float64 `json:"annual_reduction_percentage"`
	AnnualReductionAbsolute   float64 `json:"annual_reduction_absolute"`
	BaseYear                  int     `json:"base_year"`
	TargetYear                int     `json:"target_year"`
	Trajectory                []Point `json:"trajectory"`
}

// Validate checks the policy's ranges and horizon.
func (p Policy) Validate() error {
	if p.TargetYear <= p.BaseYear {
		return fmt.Errorf("%w: base %d, target %d", ErrDegenerateHorizon, p.BaseYear, p.TargetYear)
	}
	if p.ReductionPercentage < 0 || p.ReductionPercentage > percent {
		return fmt.Errorf("%w: reduction percentage %.2f not in [0, 100]", ErrInvalidPolicy, p.ReductionPercentage)
	}
	if p.BaseEmissions < 0 || math.IsNaN(p.BaseEmissions) || math.IsInf(p.BaseEmissions, 0) {
		return fmt.Errorf("%w: base emissions %v", ErrInvalidPolicy, p.BaseEmissions)
	}
	return nil
}

// AnnualRate returns the constant annual fraction r such that
// (1-r)^years = 1 - pct/100.
func AnnualRate(reductionPercentage float64, years int) float64 {
	return 1 - math.Pow(1-reductionPercentage/percent, 1/float64(years))
}

// ProjectCompounding computes a compounding reduction target and its
// year-by-year trajectory from BaseYear to TargetYear inclusive.
func ProjectCompounding(p Policy) (Target, error) {
	if err := p.Validate(); err != nil {
		return Target{}, err
	}

	years := p.TargetYear - p.BaseYear
	r := AnnualRate(p.ReductionPercentage, years)

	trajectory := make([]Point, 0, years+1)
	for i := 0; i <= years; i++ {
		remaining := math.Pow(1-r, float64(i))
		trajectory = append(trajectory, Point{
			Year:              p.BaseYear + i,
			Emissions:         p.BaseEmissions * remaining,
			ReductionFromBase: (1 - remaining) * percent,
		})
	}

	return Target{
		BaseEmissions:             p.BaseEmissions,
		TargetEmissions:           p.BaseEmissions * (1 - p.ReductionPercentage/percent),
		ReductionPercentage:       p.ReductionPercentage,
		AnnualReductionPercentage: r * percent,
		AnnualReductionAbsolute:   p.BaseEmissions * r,
		BaseYear:                  p.BaseYear,
		TargetYear:                p.TargetYear,
		Trajectory:                trajectory,
	}, nil
}
