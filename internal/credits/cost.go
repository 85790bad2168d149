package credits

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const cents = 2

//nolint:gochecknoglobals // decimal constant
var hundred = decimal.NewFromInt(100)

// OffsetAmount is the tCO2e to offset for pct percent of total.
func OffsetAmount(total, pct float64) (decimal.Decimal, error) {
	if pct < 0 || pct > 100 {
		return decimal.Zero, fmt.Errorf("%w: offset percentage %.2f not in [0, 100]", ErrInvalidAmount, pct)
	}
	return decimal.NewFromFloat(total).Mul(decimal.NewFromFloat(pct)).Div(hundred), nil
}

// EstimateCost is amount × price rounded to cents.
func EstimateCost(amount, pricePerCredit decimal.Decimal) decimal.Decimal {
	return amount.Mul(pricePerCredit).Round(cents)
}

// CompareCosts prices amount at every credit type's min, average and max.
func CompareCosts(amount decimal.Decimal) []CostRange {
	types := Types()
	out := make([]CostRange, 0, len(types))
	for _, t := range types {
		out = append(out, CostRange{
			Type: t.Name,
			Min:  EstimateCost(amount, t.MinPrice),
			Avg:  EstimateCost(amount, t.AvgPrice),
			Max:  EstimateCost(amount, t.MaxPrice),
		})
	}
	return out
}

// Purchase simulates buying credits from p against an inventory total.
func Purchase(p Project, credits decimal.Decimal, total float64) (PurchaseResult, error) {
	if !credits.IsPositive() {
		return PurchaseResult{}, fmt.Errorf("%w: %s", ErrInvalidAmount, credits)
	}
	available := decimal.NewFromInt(p.AvailableCredits)
	if credits.GreaterThan(available) {
		return PurchaseResult{}, fmt.Errorf("%w: %s requested, %s available from %s",
			ErrInsufficientCredits, credits, available, p.Name)
	}

	var pct float64
	if total > 0 {
		pct = credits.Div(decimal.NewFromFloat(total)).Mul(hundred).InexactFloat64()
	}

	return PurchaseResult{
		Project:          p.Name,
		Credits:          credits,
		Cost:             EstimateCost(credits, p.PricePerCredit),
		PercentOfTotal:   pct,
		RemainingCredits: available.Sub(credits),
	}, nil
}
