package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/inventory"
)

func TestClassify(t *testing.T) {
	// Information Technology: best 10, average 30, worst 80, midpoint 55.
	tests := []struct {
		name      string
		intensity float64
		industry  string
		want      string
	}{
		{"below best", 5, "Information Technology", ClassLeading},
		{"exactly best", 10, "Information Technology", ClassLeading},
		{"between best and average", 20, "Information Technology", ClassAboveAverage},
		{"exactly average", 30, "Information Technology", ClassAboveAverage},
		{"exactly midpoint", 55, "Information Technology", ClassBelowAverage},
		{"above midpoint", 55.1, "Information Technology", ClassLagging},
		{"unknown industry uses Other", 100, "Space Tourism", ClassBelowAverage},
		{"unknown industry lagging", 141, "", ClassLagging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.intensity, tt.industry))
		})
	}
}

func TestDenominatorGuards(t *testing.T) {
	assert.InDelta(t, 0.0, EmissionsIntensity(100, 0), 0)
	assert.InDelta(t, 0.0, EmissionsIntensity(100, -1), 0)
	assert.InDelta(t, 50.0, EmissionsIntensity(100, 2), 1e-12)
	assert.InDelta(t, 0.0, PerEmployee(100, 0), 0)
	assert.InDelta(t, 25.0, PerEmployee(100, 4), 1e-12)
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, IntensityFor(OtherIndustry), IntensityFor("Nope"))
	assert.Equal(t, DistributionFor(OtherIndustry), DistributionFor("Nope"))
	assert.True(t, IsKnownIndustry("Retail"))
	assert.False(t, IsKnownIndustry("retail"))

	names := Industries()
	require.Len(t, names, 20)
	for _, n := range names {
		assert.True(t, IsKnownIndustry(n), n)
		d := DistributionFor(n)
		assert.InDelta(t, 100.0, d.Scope1+d.Scope2+d.Scope3, 1e-9, n)
	}
}

func TestCompareCountries(t *testing.T) {
	got := CompareCountries(20)
	require.Len(t, got, len(Countries())+1)
	assert.Equal(t, "Qatar", got[0].Name)
	assert.Equal(t, "Your organization (per employee)", got[1].Name)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].PerCapita, got[i].PerCapita)
	}

	assert.Len(t, CompareCountries(0), len(Countries()))
}

func TestContextualize(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{2.5e9, "50.00% of the United States' annual emissions"},
		{6e6, "the annual emissions of a small country like Jamaica"},
		{5e7, "the annual emissions of a small country like Finland"},
		{12000, "the annual emissions of approximately 1200 average households"},
		{10, "approximately 5 transatlantic flights"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Contextualize(tt.total))
		})
	}
}

func TestCompare(t *testing.T) {
	snap := inventory.Snapshot{
		Total:       400,
		Scope1Total: 300,
		Scope3Total: 100,
		Scope1Breakdown: inventory.Breakdown{
			{Category: factors.ProcessEmissions, Label: factors.ProcessEmissions.Label(), Emissions: 300},
		},
	}

	got := Compare(snap, "Retail", 10, 8)
	assert.Equal(t, "Retail", got.Industry)
	assert.InDelta(t, 40.0, got.Intensity, 1e-9)
	assert.InDelta(t, 50.0, got.PerEmployee, 1e-9)
	assert.Equal(t, ClassAboveAverage, got.Class)
	assert.InDelta(t, (40.0-45.0)/45.0*100, got.GapToAverage, 1e-9)
	assert.InDelta(t, 75.0, got.Company.Scope1, 1e-9)
	assert.InDelta(t, 25.0, got.Company.Scope3, 1e-9)
	assert.Equal(t, DistributionFor("Retail"), got.IndustryTypical)
	assert.NotEmpty(t, got.NationalContext)

	other := Compare(snap, "Widgets", 0, 0)
	assert.Equal(t, OtherIndustry, other.Industry)
	assert.InDelta(t, 0.0, other.Intensity, 0)
	assert.Equal(t, ClassLeading, other.Class)
}
