package credits

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func usd(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Types returns the credit types in display order.
func Types() []CreditType {
	return []CreditType{
		{Name: "Renewable Energy", MinPrice: usd(3), AvgPrice: usd(8), MaxPrice: usd(15)},
		{Name: "Forestry & Conservation", MinPrice: usd(5), AvgPrice: usd(12), MaxPrice: usd(25)},
		{Name: "Methane Capture", MinPrice: usd(6), AvgPrice: usd(10), MaxPrice: usd(20)},
		{Name: "Energy Efficiency", MinPrice: usd(4), AvgPrice: usd(9), MaxPrice: usd(18)},
		{Name: "Direct Air Capture", MinPrice: usd(50), AvgPrice: usd(100), MaxPrice: usd(500)},
	}
}

// Projects returns the sample projects.
func Projects() []Project {
	return []Project{
		{
			Name:             "Amazon Rainforest Conservation",
			Type:             "Forestry & Conservation",
			Location:         "Brazil",
			PricePerCredit:   usd(15),
			AvailableCredits: 50000,
			Certification:    "Verified Carbon Standard (VCS)",
			Description:      "Protects Amazon rainforest areas from deforestation, preserving biodiversity and carbon stocks.",
			CoBenefits:       []string{"Biodiversity protection", "Indigenous community support", "Water conservation"},
		},
		{
			Name:             "Wind Farm Development",
			Type:             "Renewable Energy",
			Location:         "India",
			PricePerCredit:   usd(7),
			AvailableCredits: 75000,
			Certification:    "Gold Standard",
			Description:      "Large-scale wind farm that displaces fossil fuel-based electricity generation.",
			CoBenefits:       []string{"Energy access", "Local employment", "Air quality improvement"},
		},
		{
			Name:             "Landfill Methane Capture",
			Type:             "Methane Capture",
			Location:         "United States",
			PricePerCredit:   usd(10),
			AvailableCredits: 30000,
			Certification:    "Climate Action Reserve",
			Description:      "Captures methane from landfills and converts it into electricity.",
			CoBenefits:       []string{"Reduced odor", "Local energy generation", "Improved waste management"},
		},
		{
			Name:             "Efficient Cookstoves Distribution",
			Type:             "Energy Efficiency",
			Location:         "Kenya",
			PricePerCredit:   usd(9),
			AvailableCredits: 25000,
			Certification:    "Gold Standard",
			Description:      "Distributes efficient cookstoves to rural communities, reducing fuel wood use and indoor air pollution.",
			CoBenefits:       []string{"Health improvements", "Reduced deforestation", "Time savings"},
		},
		{
			Name:             "Direct Air Carbon Capture",
			Type:             "Direct Air Capture",
			Location:         "Iceland",
			PricePerCredit:   usd(95),
			AvailableCredits: 5000,
			Certification:    "PURO Standard",
			Description:      "Removes CO2 directly from the atmosphere and stores it permanently underground.",
			CoBenefits:       []string{"Technological innovation", "Permanent carbon removal", "Scalable climate solution"},
		},
	}
}

// TypeByName finds a credit type, ignoring case.
func TypeByName(name string) (CreditType, error) {
	for _, t := range Types() {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return CreditType{}, fmt.Errorf("%w: %q", ErrUnknownCreditType, name)
}

// ProjectByName finds a project, ignoring case.
func ProjectByName(name string) (Project, error) {
	for _, p := range Projects() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %q", ErrUnknownProject, name)
}

// ProjectsOfType filters the sample projects by credit type. An empty type
// returns every project.
func ProjectsOfType(creditType string) []Project {
	all := Projects()
	if creditType == "" {
		return all
	}
	out := make([]Project, 0, len(all))
	for _, p := range all {
		if strings.EqualFold(p.Type, creditType) {
			out = append(out, p)
		}
	}
	return out
}
