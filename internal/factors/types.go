// Package factors holds the static emission factor table.
//
// Every activity category the inventory understands is a value of the closed
// Category enumeration, and each carries its scope, user-facing key, label,
// unit and conversion factor in tonnes CO2e per unit. Electricity is the one
// category whose factor depends on a grid Region.
//
// The table is process-wide read-only data; nothing in this package mutates
// it after initialization.
package factors

import "fmt"

// Scope is a GHG Protocol emissions scope.
type Scope int

// The three scopes.
const (
	Scope1 Scope = iota + 1
	Scope2
	Scope3
)

// String returns the display name of the scope ("Scope 1").
func (s Scope) String() string {
	switch s {
	case Scope1, Scope2, Scope3:
		return fmt.Sprintf("Scope %d", int(s))
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Key returns the lower-case key used in files and JSON ("scope1").
func (s Scope) Key() string {
	return fmt.Sprintf("scope%d", int(s))
}

// Scopes lists the scopes in order.
func Scopes() []Scope {
	return []Scope{Scope1, Scope2, Scope3}
}

// Category identifies one activity category. The zero value is invalid.
type Category int

// Categories in declaration order. Breakdown ordering follows this order.
const (
	invalidCategory Category = iota

	// Scope 1: stationary combustion.
	NaturalGas
	DieselStationary
	FuelOil
	Propane
	Coal
	// Scope 1: mobile combustion.
	Gasoline
	DieselMobile
	JetFuel
	MarineFuel
	// Scope 1: fugitive and process.
	RefrigerantR22
	RefrigerantR410A
	ProcessEmissions
	OtherDirect

	// Scope 2.
	PurchasedElectricity
	PurchasedSteam
	PurchasedCooling
	PurchasedHeating

	// Scope 3 upstream.
	PurchasedGoods
	CapitalGoods
	FuelEnergyRelated
	UpstreamTransport
	WasteOperations
	BusinessTravel
	EmployeeCommuting
	UpstreamLeased
	// Scope 3 downstream.
	DownstreamTransport
	ProcessingProducts
	UseOfProducts
	EndOfLife
	DownstreamLeased
	Franchises
	Investments

	categoryCount
)

// Region is an electricity grid region.
type Region int

// Grid regions. NorthAmerica is the fallback for unrecognized input.
const (
	NorthAmerica Region = iota
	Europe
	AsiaChina
	AsiaIndia
	AsiaJapan
	AsiaOther
	SouthAmerica
	Africa
	AustraliaOceania

	regionCount
)

// Definition describes a category in the factor table.
type Definition struct {
	Category Category
	Scope    Scope
	Key      string
	Label    string
	Unit     string
	// Factor is tonnes CO2e per Unit. Zero for electricity, which is regional.
	Factor float64
	// PassThrough categories are entered directly in tCO2e.
	PassThrough bool
}
