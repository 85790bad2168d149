package factors

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c > invalidCategory && c < categoryCount
}

// String returns the category key, e.g. "natural_gas".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return definitions[c].Key
}

// Label returns the human-readable label used in breakdowns.
func (c Category) Label() string {
	if !c.Valid() {
		return c.String()
	}
	return definitions[c].Label
}

// Scope returns the scope the category reports under, or 0 if invalid.
func (c Category) Scope() Scope {
	if !c.Valid() {
		return 0
	}
	return definitions[c].Scope
}

// Lookup returns the definition for c.
func Lookup(c Category) (Definition, error) {
	if !c.Valid() {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return definitions[c], nil
}

// FactorFor returns the tCO2e-per-unit multiplier for c. Pass-through
// categories resolve to 1. Electricity has no scalar factor; use
// ElectricityFactorFor.
func FactorFor(c Category) (float64, error) {
	if c == PurchasedElectricity {
		return 0, fmt.Errorf("%w: %s is regional, use ElectricityFactorFor", ErrUnknownCategory, c)
	}
	d, err := Lookup(c)
	if err != nil {
		return 0, err
	}
	return d.Factor, nil
}

// MustFactor is FactorFor for categories known at compile time.
func MustFactor(c Category) float64 {
	f, err := FactorFor(c)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseCategory resolves a user-facing key such as "natural_gas".
func ParseCategory(key string) (Category, error) {
	c, ok := byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return invalidCategory, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	return c, nil
}

// Categories returns every category of scope s in declaration order.
func Categories(s Scope) []Category {
	var out []Category
	for c := NaturalGas; c < categoryCount; c++ {
		if definitions[c].Scope == s {
			out = append(out, c)
		}
	}
	return out
}

// All returns every definition in declaration order.
func All() []Definition {
	out := make([]Definition, 0, categoryCount-1)
	for c := NaturalGas; c < categoryCount; c++ {
		out = append(out, definitions[c])
	}
	return out
}

// String returns the region's display name, e.g. "Asia - China".
func (r Region) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regions[r].name
}

// Valid reports whether r is one of the recognized regions.
func (r Region) Valid() bool {
	return r >= NorthAmerica && r < regionCount
}

// Regions returns every recognized region.
func Regions() []Region {
	out := make([]Region, 0, regionCount)
	for r := NorthAmerica; r < regionCount; r++ {
		out = append(out, r)
	}
	return out
}

// ParseRegion resolves a region by its exact display name, such as
// "Europe". Any other spelling is unrecognized.
func ParseRegion(name string) (Region, error) {
	for r := NorthAmerica; r < regionCount; r++ {
		if regions[r].name == name {
			return r, nil
		}
	}
	return NorthAmerica, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
}

// ElectricityFactorFor returns tCO2e per kWh for r. An unrecognized region
// uses the North America factor and logs a warning.
func ElectricityFactorFor(r Region) float64 {
	if !r.Valid() {
		log.Warn().
			Str("component", "factors").
			Int("region", int(r)).
			Msg("unrecognized grid region, using North America electricity factor")
		return regions[NorthAmerica].factor
	}
	return regions[r].factor
}

// ElectricityFactorForName is ElectricityFactorFor keyed by display name.
func ElectricityFactorForName(name string) float64 {
	r, err := ParseRegion(name)
	if err != nil {
		log.Warn().
			Str("component", "factors").
			Str("region", name).
			Msg("unrecognized grid region, using North America electricity factor")
		return regions[NorthAmerica].factor
	}
	return regions[r].factor
}

// CategoryForLabel resolves a breakdown label such as "Natural Gas".
func CategoryForLabel(label string) (Category, error) {
	for c := NaturalGas; c < categoryCount; c++ {
		if definitions[c].Label == label {
			return c, nil
		}
	}
	return invalidCategory, fmt.Errorf("%w: label %q", ErrUnknownCategory, label)
}
