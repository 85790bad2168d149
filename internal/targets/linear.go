package targets

import (
	"fmt"
	"math"
)

// DefaultPathwayEndYear is the last year charted by ProjectLinear by default.
const DefaultPathwayEndYear = 2050

// LinearPolicy removes AnnualReductionPercentage of BaseEmissions each year
// until NetZeroYear, after which emissions are zero.
type LinearPolicy struct {
	BaseEmissions             float64
	AnnualReductionPercentage float64
	StartYear                 int
	EndYear                   int
	NetZeroYear               int
}

// ProjectLinear returns one point per year from StartYear to EndYear
// inclusive. The first year is always the base; later years subtract a
// fixed amount, clipped at zero, and every year at or after NetZeroYear is
// zero. EndYear defaults to DefaultPathwayEndYear when zero.
func ProjectLinear(p LinearPolicy) ([]Point, error) {
	end := p.EndYear
	if end == 0 {
		end = DefaultPathwayEndYear
	}
	if end < p.StartYear {
		return nil, fmt.Errorf("%w: start %d, end %d", ErrDegenerateHorizon, p.StartYear, end)
	}
	if p.BaseEmissions < 0 || p.AnnualReductionPercentage < 0 {
		return nil, fmt.Errorf("%w: base %.2f, annual %.2f", ErrInvalidPolicy, p.BaseEmissions, p.AnnualReductionPercentage)
	}

	step := p.AnnualReductionPercentage / percent * p.BaseEmissions
	points := make([]Point, 0, end-p.StartYear+1)
	for year := p.StartYear; year <= end; year++ {
		var e float64
		switch {
		case year == p.StartYear:
			e = p.BaseEmissions
		case year < p.NetZeroYear:
			reduction := math.Min(float64(year-p.StartYear)*step, p.BaseEmissions)
			e = math.Max(p.BaseEmissions-reduction, 0)
		default:
			e = 0
		}
		points = append(points, Point{
			Year:              year,
			Emissions:         e,
			ReductionFromBase: reductionFromBase(p.BaseEmissions, e),
		})
	}
	return points, nil
}

func reductionFromBase(base, e float64) float64 {
	if base <= 0 {
		return 0
	}
	return (1 - e/base) * percent
}
