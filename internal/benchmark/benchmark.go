package benchmark

import (
	"fmt"
	"math"
	"sort"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/inventory"
)

// Performance classes returned by Classify.
const (
	ClassLeading      = "Leading"
	ClassAboveAverage = "Above Average"
	ClassBelowAverage = "Below Average"
	ClassLagging      = "Lagging"
)

// Industries returns the known industry names in display order.
func Industries() []string {
	out := make([]string, len(industries))
	copy(out, industries)
	return out
}

// IsKnownIndustry reports whether name has its own benchmark row.
func IsKnownIndustry(name string) bool {
	_, ok := intensities[name]
	return ok
}

// IntensityFor returns the intensity range for industry.
func IntensityFor(industry string) Intensity {
	if v, ok := intensities[industry]; ok {
		return v
	}
	return intensities[OtherIndustry]
}

// DistributionFor returns the typical scope split for industry.
func DistributionFor(industry string) Distribution {
	if v, ok := distributions[industry]; ok {
		return v
	}
	return distributions[OtherIndustry]
}

// EmissionsIntensity is total divided by revenue in millions of USD, or 0
// when revenue is not positive.
func EmissionsIntensity(total, revenueMillions float64) float64 {
	if revenueMillions <= 0 {
		return 0
	}
	return total / revenueMillions
}

// PerEmployee is total divided by headcount, or 0 when headcount is not positive.
func PerEmployee(total float64, employees int) float64 {
	if employees <= 0 {
		return 0
	}
	return total / float64(employees)
}

// Classify places an intensity within the industry range. Values at or
// below best are Leading, at or below average are Above Average, at or below
// the midpoint of average and worst are Below Average, and anything else is
// Lagging.
func Classify(intensity float64, industry string) string {
	b := IntensityFor(industry)
	switch {
	case intensity <= b.Best:
		return ClassLeading
	case intensity <= b.Average:
		return ClassAboveAverage
	case intensity <= (b.Average+b.Worst)/2:
		return ClassBelowAverage
	default:
		return ClassLagging
	}
}

// Result is a full industry comparison for one organization.
type Result struct {
	Industry          string       `json:"industry"`
	Intensity         float64      `json:"intensity"`
	PerEmployee       float64      `json:"per_employee"`
	Benchmark         Intensity    `json:"benchmark"`
	Class             string       `json:"class"`
	GapToAverage      float64      `json:"gap_to_average_pct"`
	Company           Distribution `json:"company_distribution"`
	IndustryTypical   Distribution `json:"industry_distribution"`
	NationalContext   string       `json:"national_context"`
	CountryComparison []Country    `json:"country_comparison"`
}

// Compare builds a Result from a snapshot and organization size.
func Compare(snap inventory.Snapshot, industry string, revenueMillions float64, employees int) Result {
	intensity := EmissionsIntensity(snap.Total, revenueMillions)
	bench := IntensityFor(industry)
	perEmployee := PerEmployee(snap.Total, employees)

	name := industry
	if !IsKnownIndustry(name) {
		name = OtherIndustry
	}

	return Result{
		Industry:          name,
		Intensity:         intensity,
		PerEmployee:       perEmployee,
		Benchmark:         bench,
		Class:             Classify(intensity, industry),
		GapToAverage:      gap(intensity, bench.Average),
		Company:           CompanyDistribution(snap),
		IndustryTypical:   DistributionFor(industry),
		NationalContext:   Contextualize(snap.Total),
		CountryComparison: CompareCountries(perEmployee),
	}
}

func gap(v, ref float64) float64 {
	if ref <= 0 {
		return 0
	}
	return (v - ref) / ref * 100
}

// CompanyDistribution converts a snapshot into scope percentages.
func CompanyDistribution(snap inventory.Snapshot) Distribution {
	return Distribution{
		Scope1: snap.Share(factors.Scope1),
		Scope2: snap.Share(factors.Scope2),
		Scope3: snap.Share(factors.Scope3),
	}
}

// Countries returns the per-capita table in its reference order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// CompareCountries returns the per-capita table plus a row for the
// organization's per-employee figure, sorted highest first. The
// organization row is omitted when perEmployee is not positive.
func CompareCountries(perEmployee float64) []Country {
	out := Countries()
	if perEmployee > 0 {
		out = append(out, Country{Name: "Your organization (per employee)", PerCapita: perEmployee})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PerCapita > out[j].PerCapita })
	return out
}

// Contextualize describes an annual total in terms of national emissions,
// households or transatlantic flights depending on its magnitude.
func Contextualize(total float64) string {
	switch {
	case total >= 1e9:
		return fmt.Sprintf("%.2f%% of the United States' annual emissions", total/nationalTotals[0].PerCapita*100)
	case total >= 1e6:
		return fmt.Sprintf("the annual emissions of a small country like %s", closestNation(total))
	case total >= 1e3:
		return fmt.Sprintf("the annual emissions of approximately %.0f average households", total/householdTonnes)
	default:
		return fmt.Sprintf("approximately %.0f transatlantic flights", total/flightTonnes)
	}
}

const (
	householdTonnes = 10.0
	flightTonnes    = 2.0
)

func closestNation(total float64) string {
	best := ""
	smallest := math.Inf(1)
	for _, c := range nationalTotals {
		if d := math.Abs(c.PerCapita - total); d < smallest {
			smallest = d
			best = c.Name
		}
	}
	return best
}
