package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorFor(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     float64
	}{
		{"natural gas", NaturalGas, 0.00185},
		{"r-410a", RefrigerantR410A, 2.088},
		{"steam", PurchasedSteam, 0.072},
		{"franchises", Franchises, 18.5},
		{"investments", Investments, 0.00001},
		{"process emissions pass through", ProcessEmissions, 1},
		{"other direct pass through", OtherDirect, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FactorFor(tt.category)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestFactorFor_Unknown(t *testing.T) {
	_, err := FactorFor(Category(0))
	require.ErrorIs(t, err, ErrUnknownCategory)

	_, err = FactorFor(Category(999))
	require.ErrorIs(t, err, ErrUnknownCategory)

	_, err = FactorFor(PurchasedElectricity)
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestEveryCategoryResolves(t *testing.T) {
	for _, d := range All() {
		t.Run(d.Key, func(t *testing.T) {
			assert.True(t, d.Category.Valid())
			assert.NotEmpty(t, d.Label)
			assert.NotEmpty(t, d.Unit)
			if d.Category == PurchasedElectricity {
				return
			}
			f, err := FactorFor(d.Category)
			require.NoError(t, err)
			assert.Greater(t, f, 0.0)
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories(Scope1), 13)
	assert.Len(t, Categories(Scope2), 4)
	assert.Len(t, Categories(Scope3), 15)
	assert.Equal(t, NaturalGas, Categories(Scope1)[0])
	assert.Equal(t, Investments, Categories(Scope3)[14])
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Natural_Gas ")
	require.NoError(t, err)
	assert.Equal(t, NaturalGas, c)
	assert.Equal(t, "Natural Gas", c.Label())
	assert.Equal(t, Scope1, c.Scope())

	_, err = ParseCategory("unobtainium")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestElectricityFactorFor(t *testing.T) {
	tests := []struct {
		region Region
		want   float64
	}{
		{NorthAmerica, 0.000429},
		{Europe, 0.000276},
		{AsiaChina, 0.000623},
		{AsiaIndia, 0.000708},
		{AsiaJapan, 0.000457},
		{AsiaOther, 0.000536},
		{SouthAmerica, 0.000192},
		{Africa, 0.000639},
		{AustraliaOceania, 0.000533},
	}
	for _, tt := range tests {
		t.Run(tt.region.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, ElectricityFactorFor(tt.region), 1e-12)
		})
	}
	assert.Len(t, Regions(), 9)
}

func TestElectricityFactorFor_FallsBackToNorthAmerica(t *testing.T) {
	na := ElectricityFactorFor(NorthAmerica)
	assert.InDelta(t, na, ElectricityFactorFor(Region(42)), 1e-12)
	assert.InDelta(t, na, ElectricityFactorFor(Region(-1)), 1e-12)
	assert.InDelta(t, na, ElectricityFactorForName("Atlantis"), 1e-12)
	assert.InDelta(t, 0.000276, ElectricityFactorForName("Europe"), 1e-12)
}

func TestElectricityFactorForName_ExactMatchOnly(t *testing.T) {
	na := ElectricityFactorFor(NorthAmerica)
	for _, name := range []string{"europe", "EUROPE", " Europe", "Europe "} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, na, ElectricityFactorForName(name), 1e-12)
		})
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("Australia & Oceania")
	require.NoError(t, err)
	assert.Equal(t, AustraliaOceania, r)

	_, err = ParseRegion("australia & oceania")
	require.ErrorIs(t, err, ErrUnknownRegion)

	r, err = ParseRegion("Mars")
	require.ErrorIs(t, err, ErrUnknownRegion)
	assert.Equal(t, NorthAmerica, r)
}

func TestScope(t *testing.T) {
	assert.Equal(t, "Scope 2", Scope2.String())
	assert.Equal(t, "scope3", Scope3.Key())
	assert.Equal(t, []Scope{Scope1, Scope2, Scope3}, Scopes())
}

func TestCategoryForLabel(t *testing.T) {
	for _, d := range All() {
		c, err := CategoryForLabel(d.Label)
		require.NoError(t, err)
		assert.Equal(t, d.Category, c)
	}
	_, err := CategoryForLabel("Nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
