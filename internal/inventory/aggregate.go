package inventory

import "github.com/rshade/carbonfocus/internal/factors"

// Aggregate multiplies every present activity value by its emission factor
// and returns the totals and per-scope breakdowns. Breakdowns keep only
// strictly positive lines; totals include every present value. Aggregate does
// no bounds checking: negative inputs are summed as given.
func Aggregate(in Input) Snapshot {
	s1Total, s1 := aggregateScope1(in.Scope1)
	s2Total, s2 := aggregateScope2(in.Scope2)
	s3Total, s3 := aggregateScope3(in.Scope3)

	return Snapshot{
		Total:           s1Total + s2Total + s3Total,
		Scope1Total:     s1Total,
		Scope2Total:     s2Total,
		Scope3Total:     s3Total,
		Scope1Breakdown: positive(s1),
		Scope2Breakdown: positive(s2),
		Scope3Breakdown: positive(s3),
	}
}

func aggregateScope1(in Scope1Input) (float64, Breakdown) {
	var total float64
	var lines Breakdown
	for _, c := range factors.Categories(factors.Scope1) {
		q, ok := in.Values[c]
		if !ok {
			continue
		}
		e := q * factors.MustFactor(c)
		total += e
		lines = append(lines, Line{Category: c, Label: c.Label(), Emissions: e})
	}
	return total, lines
}

func aggregateScope2(in Scope2Input) (float64, Breakdown) {
	var total float64
	var lines Breakdown
	for _, c := range factors.Categories(factors.Scope2) {
		q, ok := in.Values[c]
		if !ok {
			continue
		}
		var e float64
		if c == factors.PurchasedElectricity {
			e = ElectricityEmissions(q, in.Method)
		} else {
			e = q * factors.MustFactor(c)
		}
		total += e
		lines = append(lines, Line{Category: c, Label: c.Label(), Emissions: e})
	}
	return total, lines
}

func aggregateScope3(in Scope3Input) (float64, Breakdown) {
	var total float64
	var lines Breakdown
	for _, c := range factors.Categories(factors.Scope3) {
		q, ok := in.Values[c]
		if !ok {
			continue
		}
		e := q * factors.MustFactor(c)
		if c == factors.UseOfProducts {
			// Each unit emits every year of its service life.
			if in.ProductLifetimeYears == nil {
				continue
			}
			e *= *in.ProductLifetimeYears
		}
		total += e
		lines = append(lines, Line{Category: c, Label: c.Label(), Emissions: e})
	}
	return total, lines
}

// ElectricityEmissions returns tCO2e for kwh of purchased electricity under
// method. A nil method is market-based with no renewable share.
func ElectricityEmissions(kwh float64, method Method) float64 {
	switch m := method.(type) {
	case LocationBased:
		return kwh * factors.ElectricityFactorFor(m.Region)
	case MarketBased:
		return kwh * (1 - m.EffectiveRenewablePercentage()/100) * factors.ElectricityFactorFor(factors.NorthAmerica)
	default:
		return kwh * factors.ElectricityFactorFor(factors.NorthAmerica)
	}
}

func positive(b Breakdown) Breakdown {
	out := Breakdown{}
	for _, l := range b {
		if l.Emissions > 0 {
			out = append(out, l)
		}
	}
	return out
}
