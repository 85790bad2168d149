package inventory_test

import (
	"testing"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/inventory"
)

// fullInput has every category populated.
func fullInput() inventory.Input {
	lifetime := 8.0
	in := inventory.Input{
		Scope1: inventory.Scope1Input{Values: inventory.Values{}},
		Scope2: inventory.Scope2Input{
			Values: inventory.Values{},
			Method: inventory.LocationBased{Region: factors.Europe},
		},
		Scope3: inventory.Scope3Input{Values: inventory.Values{}, ProductLifetimeYears: &lifetime},
	}
	for i, d := range factors.All() {
		q := float64(100 * (i + 1))
		switch d.Scope {
		case factors.Scope1:
			in.Scope1.Values[d.Category] = q
		case factors.Scope2:
			in.Scope2.Values[d.Category] = q
		case factors.Scope3:
			in.Scope3.Values[d.Category] = q
		}
	}
	return in
}

// BenchmarkAggregate benchmarks a full inventory with every category present.
func BenchmarkAggregate(b *testing.B) {
	b.ReportAllocs()
	in := fullInput()

	for b.Loop() {
		snap := inventory.Aggregate(in)
		if snap.Total <= 0 {
			b.Fatal("expected a positive total")
		}
	}
}

// BenchmarkMerge benchmarks folding many site snapshots into one.
func BenchmarkMerge(b *testing.B) {
	b.ReportAllocs()
	site := inventory.Aggregate(fullInput())

	for b.Loop() {
		var total inventory.Snapshot
		for range 100 {
			total = total.Merge(site)
		}
	}
}
