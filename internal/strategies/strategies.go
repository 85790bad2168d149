// Package strategies recommends reduction actions from the shape of an
// inventory and the organization's industry.
package strategies

import (
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/inventory"
)

// Strategy is a generic reduction action.
type Strategy struct {
	Name      string        `json:"name"`
	Scope     factors.Scope `json:"-"`
	ScopeName string        `json:"scope"`
	Potential string        `json:"potential"`
	Timeframe string        `json:"timeframe"`
}

// othersPerScope is how many strategies are taken from each non-dominant scope.
const othersPerScope = 2

func s(scope factors.Scope, name, potential, timeframe string) Strategy {
	return Strategy{Name: name, Scope: scope, ScopeName: scope.String(), Potential: potential, Timeframe: timeframe}
}

// ForScope returns the strategies for scope in priority order.
func ForScope(scope factors.Scope) []Strategy {
	switch scope {
	case factors.Scope1:
		return []Strategy{
			s(scope, "Energy efficiency improvements", "Medium", "Short-term"),
			s(scope, "Switch to low-carbon fuels", "High", "Medium-term"),
			s(scope, "Electrify vehicle fleet", "High", "Medium-term"),
			s(scope, "Optimize HVAC systems", "Medium", "Short-term"),
			s(scope, "Reduce refrigerant leaks", "Medium", "Short-term"),
		}
	case factors.Scope2:
		return []Strategy{
			s(scope, "Purchase renewable energy", "High", "Short-term"),
			s(scope, "Install on-site renewables", "High", "Medium-term"),
			s(scope, "Energy efficiency in buildings", "Medium", "Short-term"),
			s(scope, "Smart building management", "Medium", "Medium-term"),
			s(scope, "LED lighting upgrades", "Low", "Short-term"),
		}
	case factors.Scope3:
		return []Strategy{
			s(scope, "Supplier engagement program", "High", "Long-term"),
			s(scope, "Optimize logistics", "Medium", "Medium-term"),
			s(scope, "Reduce business travel", "Low", "Short-term"),
			s(scope, "Sustainable procurement policy", "High", "Medium-term"),
			s(scope, "Product redesign for efficiency", "High", "Long-term"),
		}
	default:
		return nil
	}
}

// DominantScope returns the scope with the largest subtotal. Ties go to the
// lower-numbered scope, and an inventory with no positive total is Scope 1.
func DominantScope(snap inventory.Snapshot) factors.Scope {
	if snap.Total <= 0 {
		return factors.Scope1
	}
	dominant := factors.Scope1
	for _, sc := range factors.Scopes() {
		if snap.ScopeTotal(sc) > snap.ScopeTotal(dominant) {
			dominant = sc
		}
	}
	return dominant
}

// Recommend lists every strategy for the dominant scope followed by the top
// two of each other scope.
func Recommend(snap inventory.Snapshot) []Strategy {
	dominant := DominantScope(snap)
	out := append([]Strategy(nil), ForScope(dominant)...)
	for _, sc := range factors.Scopes() {
		if sc == dominant {
			continue
		}
		out = append(out, ForScope(sc)[:othersPerScope]...)
	}
	return out
}
