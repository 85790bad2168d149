package greenops

import (
	"math"
	"strings"
)

func unitFactor(unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gco2e":
		return GramsToTonnes, true
	case "kg", "kgco2e":
		return KgToTonnes, true
	case "t", "tco2e", "tonnes":
		return TonnesToTonnes, true
	case "lb", "lbco2e":
		return PoundsToTonnes, true
	default:
		return 0, false
	}
}

// NormalizeToTonnes converts value in unit to tonnes CO2e. Units are g, kg,
// t and lb, optionally suffixed with CO2e, matched case-insensitively.
func NormalizeToTonnes(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}
	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return value * factor, nil
}

// IsRecognizedUnit reports whether NormalizeToTonnes accepts unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}
