package targets

// IndustryAmbition is the typical 2030 reduction commitment for an industry.
type IndustryAmbition struct {
	AverageReduction float64 `json:"average_reduction"`
	BestPractice     float64 `json:"best_practice"`
}

// Ambition levels returned by CompareAmbition.
const (
	AmbitionLeading = "Leading"
	AmbitionAligned = "Aligned"
	AmbitionBelow   = "Below Industry Average"
)

//nolint:gochecknoglobals // static reference data
var industryAmbitions = map[string]IndustryAmbition{
	"Agriculture":            {AverageReduction: 30, BestPractice: 45},
	"Automotive":             {AverageReduction: 35, BestPractice: 50},
	"Aviation":               {AverageReduction: 25, BestPractice: 40},
	"Chemical":               {AverageReduction: 30, BestPractice: 45},
	"Construction":           {AverageReduction: 40, BestPractice: 55},
	"Education":              {AverageReduction: 45, BestPractice: 60},
	"Energy":                 {AverageReduction: 35, BestPractice: 50},
	"Financial Services":     {AverageReduction: 50, BestPractice: 65},
	"Food & Beverage":        {AverageReduction: 35, BestPractice: 50},
	"Healthcare":             {AverageReduction: 40, BestPractice: 55},
	"Hospitality":            {AverageReduction: 35, BestPractice: 50},
	"Information Technology": {AverageReduction: 45, BestPractice: 60},
	"Manufacturing":          {AverageReduction: 30, BestPractice: 45},
	"Mining":                 {AverageReduction: 25, BestPractice: 40},
	"Real Estate":            {AverageReduction: 40, BestPractice: 55},
	"Retail":                 {AverageReduction: 35, BestPractice: 50},
	"Telecommunications":     {AverageReduction: 40, BestPractice: 55},
	"Transportation":         {AverageReduction: 30, BestPractice: 45},
	"Utilities":              {AverageReduction: 35, BestPractice: 50},
	"Other":                  {AverageReduction: 35, BestPractice: 50},
}

// AmbitionFor returns the reference commitments for industry, or "Other".
func AmbitionFor(industry string) IndustryAmbition {
	if a, ok := industryAmbitions[industry]; ok {
		return a
	}
	return industryAmbitions["Other"]
}

// CompareAmbition classifies a 2030 reduction percentage against industry peers.
func CompareAmbition(reductionBy2030 float64, industry string) string {
	a := AmbitionFor(industry)
	switch {
	case reductionBy2030 >= a.BestPractice:
		return AmbitionLeading
	case reductionBy2030 >= a.AverageReduction:
		return AmbitionAligned
	default:
		return AmbitionBelow
	}
}
