package inventory

import "github.com/rshade/carbonfocus/internal/factors"

// ScopeTotal returns the subtotal for s.
func (s Snapshot) ScopeTotal(scope factors.Scope) float64 {
	switch scope {
	case factors.Scope1:
		return s.Scope1Total
	case factors.Scope2:
		return s.Scope2Total
	case factors.Scope3:
		return s.Scope3Total
	default:
		return 0
	}
}

// ScopeBreakdown returns the breakdown for s.
func (s Snapshot) ScopeBreakdown(scope factors.Scope) Breakdown {
	switch scope {
	case factors.Scope1:
		return s.Scope1Breakdown
	case factors.Scope2:
		return s.Scope2Breakdown
	case factors.Scope3:
		return s.Scope3Breakdown
	default:
		return nil
	}
}

// ScopeTotals returns the three subtotals keyed by scope.
func (s Snapshot) ScopeTotals() map[factors.Scope]float64 {
	return map[factors.Scope]float64{
		factors.Scope1: s.Scope1Total,
		factors.Scope2: s.Scope2Total,
		factors.Scope3: s.Scope3Total,
	}
}

// Share returns the scope's percentage of the total, or 0 for an empty total.
func (s Snapshot) Share(scope factors.Scope) float64 {
	if s.Total <= 0 {
		return 0
	}
	return s.ScopeTotal(scope) / s.Total * 100
}

// IsEmpty reports whether nothing was emitted.
func (s Snapshot) IsEmpty() bool {
	return s.Total == 0
}

// Merge adds other onto s, line by line, keeping declaration order. It is
// used to consolidate several facilities into one inventory.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	return Snapshot{
		Total:           s.Total + other.Total,
		Scope1Total:     s.Scope1Total + other.Scope1Total,
		Scope2Total:     s.Scope2Total + other.Scope2Total,
		Scope3Total:     s.Scope3Total + other.Scope3Total,
		Scope1Breakdown: mergeBreakdowns(factors.Scope1, s.Scope1Breakdown, other.Scope1Breakdown),
		Scope2Breakdown: mergeBreakdowns(factors.Scope2, s.Scope2Breakdown, other.Scope2Breakdown),
		Scope3Breakdown: mergeBreakdowns(factors.Scope3, s.Scope3Breakdown, other.Scope3Breakdown),
	}
}

func mergeBreakdowns(scope factors.Scope, a, b Breakdown) Breakdown {
	out := Breakdown{}
	for _, c := range factors.Categories(scope) {
		va, okA := a.Get(c)
		vb, okB := b.Get(c)
		if !okA && !okB {
			continue
		}
		if v := va + vb; v > 0 {
			out = append(out, Line{Category: c, Label: c.Label(), Emissions: v})
		}
	}
	return out
}
