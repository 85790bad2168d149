package greenops

// EPA greenhouse gas equivalency divisors, in kg CO2e per unit of activity.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed by one seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO2e per day of average US home electricity.
	EPAHomeDayFactor = 18.3
)

// Conversion factors to tonnes CO2e.
const (
	GramsToTonnes  = 1e-6
	KgToTonnes     = 1e-3
	TonnesToTonnes = 1.0
	PoundsToTonnes = 0.000453592

	kgPerTonne = 1000.0
)

// Display thresholds.
const (
	// MinEquivalencyTonnes is the smallest total for which equivalencies are
	// reported; below it they round to nothing meaningful.
	MinEquivalencyTonnes = 0.001

	// LargeNumberThreshold switches to "~X.X million" notation.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" notation.
	BillionThreshold = 1_000_000_000
)
