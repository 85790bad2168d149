package factors

// tCO2e per unit. Values follow the simplified published averages the
// calculator has always used; they are not region-specific except electricity.
//
//nolint:gochecknoglobals // immutable lookup table
var definitions = [categoryCount]Definition{
	NaturalGas:       {Scope: Scope1, Key: "natural_gas", Label: "Natural Gas", Unit: "m³", Factor: 0.00185},
	DieselStationary: {Scope: Scope1, Key: "diesel_stationary", Label: "Stationary Diesel", Unit: "liters", Factor: 0.00269},
	FuelOil:          {Scope: Scope1, Key: "fuel_oil", Label: "Fuel Oil", Unit: "liters", Factor: 0.00276},
	Propane:          {Scope: Scope1, Key: "propane", Label: "Propane", Unit: "kg", Factor: 0.00151},
	Coal:             {Scope: Scope1, Key: "coal", Label: "Coal", Unit: "kg", Factor: 0.00246},
	Gasoline:         {Scope: Scope1, Key: "gasoline", Label: "Gasoline", Unit: "liters", Factor: 0.00231},
	DieselMobile:     {Scope: Scope1, Key: "diesel_mobile", Label: "Mobile Diesel", Unit: "liters", Factor: 0.00267},
	JetFuel:          {Scope: Scope1, Key: "jet_fuel", Label: "Jet Fuel", Unit: "liters", Factor: 0.00249},
	MarineFuel:       {Scope: Scope1, Key: "marine_fuel", Label: "Marine Fuel", Unit: "liters", Factor: 0.00276},
	RefrigerantR22:   {Scope: Scope1, Key: "refrigerant_r22", Label: "R-22 Refrigerant", Unit: "kg", Factor: 1.810},
	RefrigerantR410A: {Scope: Scope1, Key: "refrigerant_r410a", Label: "R-410A Refrigerant", Unit: "kg", Factor: 2.088},
	ProcessEmissions: {Scope: Scope1, Key: "process_emissions", Label: "Process Emissions", Unit: "tCO2e", Factor: 1, PassThrough: true},
	OtherDirect:      {Scope: Scope1, Key: "other_direct", Label: "Other Direct", Unit: "tCO2e", Factor: 1, PassThrough: true},

	PurchasedElectricity: {Scope: Scope2, Key: "purchased_electricity", Label: "Purchased Electricity", Unit: "kWh"},
	PurchasedSteam:       {Scope: Scope2, Key: "purchased_steam", Label: "Purchased Steam", Unit: "GJ", Factor: 0.072},
	PurchasedCooling:     {Scope: Scope2, Key: "purchased_cooling", Label: "Purchased Cooling", Unit: "GJ", Factor: 0.065},
	PurchasedHeating:     {Scope: Scope2, Key: "purchased_heating", Label: "Purchased Heating", Unit: "GJ", Factor: 0.067},

	PurchasedGoods:      {Scope: Scope3, Key: "purchased_goods", Label: "Purchased Goods & Services", Unit: "USD", Factor: 0.00033},
	CapitalGoods:        {Scope: Scope3, Key: "capital_goods", Label: "Capital Goods", Unit: "USD", Factor: 0.00026},
	FuelEnergyRelated:   {Scope: Scope3, Key: "fuel_energy_related", Label: "Fuel & Energy-Related", Unit: "GJ", Factor: 0.0187},
	UpstreamTransport:   {Scope: Scope3, Key: "upstream_transport", Label: "Upstream Transportation", Unit: "tonne-km", Factor: 0.00011},
	WasteOperations:     {Scope: Scope3, Key: "waste_operations", Label: "Waste in Operations", Unit: "tonnes", Factor: 0.433},
	BusinessTravel:      {Scope: Scope3, Key: "business_travel", Label: "Business Travel", Unit: "passenger-km", Factor: 0.00017},
	EmployeeCommuting:   {Scope: Scope3, Key: "employee_commuting", Label: "Employee Commuting", Unit: "passenger-km", Factor: 0.00015},
	UpstreamLeased:      {Scope: Scope3, Key: "upstream_leased", Label: "Upstream Leased Assets", Unit: "m²", Factor: 0.025},
	DownstreamTransport: {Scope: Scope3, Key: "downstream_transport", Label: "Downstream Transportation", Unit: "tonne-km", Factor: 0.00011},
	ProcessingProducts:  {Scope: Scope3, Key: "processing_products", Label: "Processing of Sold Products", Unit: "tonnes", Factor: 0.36},
	UseOfProducts:       {Scope: Scope3, Key: "use_of_products", Label: "Use of Sold Products", Unit: "units", Factor: 0.23},
	EndOfLife:           {Scope: Scope3, Key: "end_of_life", Label: "End-of-Life Treatment", Unit: "tonnes", Factor: 0.252},
	DownstreamLeased:    {Scope: Scope3, Key: "downstream_leased", Label: "Downstream Leased Assets", Unit: "m²", Factor: 0.023},
	Franchises:          {Scope: Scope3, Key: "franchises", Label: "Franchises", Unit: "count", Factor: 18.5},
	Investments:         {Scope: Scope3, Key: "investments", Label: "Investments", Unit: "USD", Factor: 0.00001},
}

// tCO2e per kWh by grid region.
//
//nolint:gochecknoglobals // immutable lookup table
var regions = [regionCount]struct {
	name   string
	factor float64
}{
	NorthAmerica:     {"North America", 0.000429},
	Europe:           {"Europe", 0.000276},
	AsiaChina:        {"Asia - China", 0.000623},
	AsiaIndia:        {"Asia - India", 0.000708},
	AsiaJapan:        {"Asia - Japan", 0.000457},
	AsiaOther:        {"Asia - Other", 0.000536},
	SouthAmerica:     {"South America", 0.000192},
	Africa:           {"Africa", 0.000639},
	AustraliaOceania: {"Australia & Oceania", 0.000533},
}

//nolint:gochecknoglobals // derived once from definitions
var byKey = func() map[string]Category {
	m := make(map[string]Category, categoryCount)
	for c := NaturalGas; c < categoryCount; c++ {
		m[definitions[c].Key] = c
	}
	return m
}()

//nolint:gochecknoinits // fills the Category field so the literal above stays readable
func init() {
	for c := NaturalGas; c < categoryCount; c++ {
		definitions[c].Category = c
	}
}
