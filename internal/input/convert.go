package input

import (
	"context"
	"strings"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/logging"
)

// NormalizeOrganization fills defaults and clamps headcount and revenue so
// per-employee and intensity metrics are always defined.
func NormalizeOrganization(o Organization) Profile {
	p := Profile{
		Name:      strings.TrimSpace(o.Name),
		Industry:  strings.TrimSpace(o.Industry),
		Employees: DefaultEmployees,
		Revenue:   DefaultRevenue,
		Year:      DefaultYear,
	}
	if o.Employees != nil {
		p.Employees = max(MinEmployees, *o.Employees)
	}
	if o.Revenue != nil {
		p.Revenue = max(MinRevenue, *o.Revenue)
	}
	if o.Year != nil && *o.Year > 0 {
		p.Year = *o.Year
	}
	return p
}

// Profile returns the normalized organization.
func (f *ActivityFile) Profile() Profile {
	return NormalizeOrganization(f.Organization)
}

// ToInput validates f and converts it for inventory.Aggregate. The Scope 2
// method is resolved here, once.
func (f *ActivityFile) ToInput(ctx context.Context) (inventory.Input, error) {
	if err := f.Validate(); err != nil {
		return inventory.Input{}, err
	}

	method, err := f.resolveMethod(ctx)
	if err != nil {
		return inventory.Input{}, err
	}

	in := inventory.Input{
		Scope1: inventory.Scope1Input{Values: toValues(f.Scope1)},
		Scope2: inventory.Scope2Input{Values: toValues(f.Scope2.Values), Method: method},
		Scope3: inventory.Scope3Input{Values: toValues(f.Scope3.Values)},
	}
	if f.Scope3.ProductAvgLifetime != nil {
		lifetime := *f.Scope3.ProductAvgLifetime
		in.Scope3.ProductLifetimeYears = &lifetime
	}
	return in, nil
}

// resolveMethod picks the Scope 2 method. Location-based accounting needs
// both the method and a grid_region; anything else is market-based, with the
// renewable share applied only when has_renewable_ppa is set.
func (f *ActivityFile) resolveMethod(ctx context.Context) (inventory.Method, error) {
	name, err := parseMethod(f.Scope2.CalculationMethod)
	if err != nil {
		return nil, err
	}
	regionName := f.Scope2.GridRegion
	if name != methodLocation || regionName == "" {
		return inventory.MarketBased{
			HasRenewablePPA:     f.Scope2.HasRenewablePPA,
			RenewablePercentage: f.Scope2.RenewablePercentage,
		}, nil
	}

	region, err := factors.ParseRegion(regionName)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Str("component", "input").
			Str("path", f.Path).
			Str("grid_region", regionName).
			Msg("unrecognized grid region, using North America electricity factor")
	}
	return inventory.LocationBased{Region: region}, nil
}

// toValues converts validated keys. Keys that do not parse are skipped;
// Validate has already rejected them.
func toValues(m map[string]float64) inventory.Values {
	out := make(inventory.Values, len(m))
	for k, v := range m {
		c, err := factors.ParseCategory(k)
		if err != nil {
			continue
		}
		out[c] += v
	}
	return out
}

// Load reads, validates and converts path in one step.
func Load(ctx context.Context, path string) (*ActivityFile, inventory.Input, error) {
	f, err := LoadFile(ctx, path)
	if err != nil {
		return nil, inventory.Input{}, err
	}
	in, err := f.ToInput(ctx)
	if err != nil {
		return f, inventory.Input{}, err
	}
	return f, in, nil
}
