package greenops

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/rshade/carbonfocus/internal/inventory"
)

type equivalencyDef struct {
	typ    EquivalencyType
	factor float64
	label  string
}

//nolint:gochecknoglobals // fixed display order
var equivalencyDefs = []equivalencyDef{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "days of home electricity"},
}

// Calculate computes every equivalency for a total in tonnes CO2e. Totals
// below MinEquivalencyTonnes produce an empty summary without error.
func Calculate(tonnes float64) (Summary, error) {
	if math.IsInf(tonnes, 0) || math.IsNaN(tonnes) {
		return Summary{IsEmpty: true}, ErrCalculationOverflow
	}
	if tonnes < 0 {
		return Summary{IsEmpty: true}, ErrNegativeValue
	}
	if tonnes < MinEquivalencyTonnes {
		return Summary{Tonnes: tonnes, IsEmpty: true}, nil
	}

	kg := tonnes * kgPerTonne
	eqs := make([]Equivalency, 0, len(equivalencyDefs))
	for _, d := range equivalencyDefs {
		v := kg / d.factor
		eqs = append(eqs, Equivalency{
			Type:           d.typ,
			Value:          v,
			FormattedValue: formatEquivalency(v),
			Label:          d.label,
		})
	}

	miles, phones := eqs[0].FormattedValue, eqs[1].FormattedValue
	return Summary{
		Tonnes:      tonnes,
		Equivalents: eqs,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// CalculateWithUnit normalizes value first.
func CalculateWithUnit(value float64, unit string) (Summary, error) {
	t, err := NormalizeToTonnes(value, unit)
	if err != nil {
		return Summary{IsEmpty: true}, err
	}
	return Calculate(t)
}

// FromSnapshot computes equivalencies for a snapshot's total. Negative or
// invalid totals are logged and yield an empty summary.
func FromSnapshot(snap inventory.Snapshot) Summary {
	s, err := Calculate(snap.Total)
	if err != nil {
		log.Warn().Err(err).Float64("total", snap.Total).Msg("equivalency calculation skipped")
		return Summary{IsEmpty: true}
	}
	return s
}

func formatEquivalency(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
