package credits

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetAmount(t *testing.T) {
	got, err := OffsetAmount(1000, 30)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(300)), got.String())

	zero, err := OffsetAmount(1000, 0)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = OffsetAmount(1000, 120)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		price  string
		want   string
	}{
		{"whole numbers", "300", "8", "2400"},
		{"rounded to cents", "12.345", "1", "12.35"},
		{"fractional price", "0.1", "0.2", "0.02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCost(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.price))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestCompareCosts(t *testing.T) {
	got := CompareCosts(decimal.NewFromInt(10))
	require.Len(t, got, len(Types()))
	assert.Equal(t, "Renewable Energy", got[0].Type)
	assert.Equal(t, "30", got[0].Min.String())
	assert.Equal(t, "80", got[0].Avg.String())
	assert.Equal(t, "150", got[0].Max.String())
	assert.Equal(t, "5000", got[4].Max.String())
	for _, c := range got {
		assert.True(t, c.Min.LessThanOrEqual(c.Avg))
		assert.True(t, c.Avg.LessThanOrEqual(c.Max))
	}
}

func TestPurchase(t *testing.T) {
	p, err := ProjectByName("wind farm development")
	require.NoError(t, err)

	got, err := Purchase(p, decimal.NewFromInt(100), 1000)
	require.NoError(t, err)
	assert.Equal(t, "700", got.Cost.String())
	assert.InDelta(t, 10.0, got.PercentOfTotal, 1e-9)
	assert.Equal(t, "74900", got.RemainingCredits.String())

	zeroTotal, err := Purchase(p, decimal.NewFromInt(1), 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, zeroTotal.PercentOfTotal, 0)
}

func TestPurchase_Errors(t *testing.T) {
	p, err := ProjectByName("Direct Air Carbon Capture")
	require.NoError(t, err)

	tests := []struct {
		name    string
		credits decimal.Decimal
		wantErr error
	}{
		{"zero", decimal.Zero, ErrInvalidAmount},
		{"negative", decimal.NewFromInt(-5), ErrInvalidAmount},
		{"above availability", decimal.NewFromInt(5001), ErrInsufficientCredits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Purchase(p, tt.credits, 1000)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = Purchase(p, decimal.NewFromInt(5000), 1000)
	assert.NoError(t, err)
}

func TestCatalogLookups(t *testing.T) {
	ct, err := TypeByName("direct air capture")
	require.NoError(t, err)
	assert.Equal(t, "100", ct.AvgPrice.String())

	_, err = TypeByName("Ocean Fertilization")
	assert.ErrorIs(t, err, ErrUnknownCreditType)

	_, err = ProjectByName("Nope")
	assert.ErrorIs(t, err, ErrUnknownProject)

	assert.Len(t, ProjectsOfType(""), 5)
	forestry := ProjectsOfType("Forestry & Conservation")
	require.Len(t, forestry, 1)
	assert.Equal(t, "Brazil", forestry[0].Location)
	assert.Empty(t, ProjectsOfType("Blue Carbon"))
}
