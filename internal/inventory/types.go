// Package inventory aggregates activity data into a Scope 1/2/3 emissions
// snapshot.
//
// Aggregate is a pure function: given the same Input it always returns the
// same Snapshot and touches no shared state. Callers own whatever session
// lifecycle the snapshot lives in and replace it wholesale on recompute.
package inventory

import "github.com/rshade/carbonfocus/internal/factors"

// Values maps a category to a non-negative activity quantity in the
// category's unit. A category missing from the map contributes nothing.
type Values map[factors.Category]float64

// Method selects how Scope 2 electricity is accounted for. It is either
// LocationBased or MarketBased.
type Method interface {
	// Name returns "Location-based" or "Market-based".
	Name() string
	isMethod()
}

// Method names as they appear in activity files.
const (
	MethodLocationBased = "Location-based"
	MethodMarketBased   = "Market-based"
)

// LocationBased charges electricity at the grid-average factor of Region.
type LocationBased struct {
	Region factors.Region
}

// Name implements Method.
func (LocationBased) Name() string { return MethodLocationBased }
func (LocationBased) isMethod()    {}

// MarketBased charges only the non-renewable share of electricity, at the
// North America factor. RenewablePercentage is ignored unless
// HasRenewablePPA is set.
type MarketBased struct {
	HasRenewablePPA     bool
	RenewablePercentage float64
}

// Name implements Method.
func (MarketBased) Name() string { return MethodMarketBased }
func (MarketBased) isMethod()    {}

// EffectiveRenewablePercentage returns the percentage actually applied.
func (m MarketBased) EffectiveRenewablePercentage() float64 {
	if !m.HasRenewablePPA {
		return 0
	}
	return m.RenewablePercentage
}

// Scope1Input holds direct emission activity.
type Scope1Input struct {
	Values Values
}

// Scope2Input holds purchased energy. A nil Method is treated as MarketBased{}.
type Scope2Input struct {
	Values Values
	Method Method
}

// Scope3Input holds value-chain activity. ProductLifetimeYears must be set
// for use of sold products to be counted.
type Scope3Input struct {
	Values               Values
	ProductLifetimeYears *float64
}

// Input is everything Aggregate needs.
type Input struct {
	Scope1 Scope1Input
	Scope2 Scope2Input
	Scope3 Scope3Input
}

// Line is one breakdown entry.
type Line struct {
	Category  factors.Category
	Label     string
	Emissions float64
}

// Snapshot is the result of one aggregation. All values are tCO2e.
type Snapshot struct {
	Total       float64
	Scope1Total float64
	Scope2Total float64
	Scope3Total float64

	Scope1Breakdown Breakdown
	Scope2Breakdown Breakdown
	Scope3Breakdown Breakdown
}
