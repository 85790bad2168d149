package targets

import (
	"fmt"
	"sort"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/inventory"
)

// ScopeTarget is a reduction goal for one scope.
type ScopeTarget struct {
	Scope               factors.Scope `json:"-"`
	Name                string        `json:"scope"`
	Current             float64       `json:"current"`
	ReductionPercentage float64       `json:"reduction_percentage"`
	Target              float64       `json:"target"`
	Reduction           float64       `json:"reduction"`
}

// ScopeTargets applies a percentage reduction to each scope subtotal. The
// result is ordered by absolute reduction, largest first, which is the order
// scopes should be prioritized in.
func ScopeTargets(snap inventory.Snapshot, pct map[factors.Scope]float64) ([]ScopeTarget, error) {
	out := make([]ScopeTarget, 0, len(factors.Scopes()))
	for _, s := range factors.Scopes() {
		p := pct[s]
		if p < 0 || p > percent {
			return nil, fmt.Errorf("%w: %s reduction %.2f not in [0, 100]", ErrInvalidPolicy, s, p)
		}
		current := snap.ScopeTotal(s)
		target := current * (percent - p) / percent
		out = append(out, ScopeTarget{
			Scope:               s,
			Name:                s.String(),
			Current:             current,
			ReductionPercentage: p,
			Target:              target,
			Reduction:           current - target,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Reduction > out[j].Reduction })
	return out, nil
}
