package credits

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for non-positive purchase amounts or
	// offset percentages outside [0, 100].
	ErrInvalidAmount = errors.New("invalid credit amount")

	// ErrInsufficientCredits is returned when a purchase exceeds a project's availability.
	ErrInsufficientCredits = errors.New("insufficient credits available")

	// ErrUnknownCreditType is returned by TypeByName.
	ErrUnknownCreditType = errors.New("unknown credit type")

	// ErrUnknownProject is returned by ProjectByName.
	ErrUnknownProject = errors.New("unknown credit project")
)

// CreditType is a class of offset with its USD price range per tCO2e.
type CreditType struct {
	Name     string          `json:"name"`
	MinPrice decimal.Decimal `json:"min_price"`
	AvgPrice decimal.Decimal `json:"avg_price"`
	MaxPrice decimal.Decimal `json:"max_price"`
}

// Project is an offset project that sells credits.
type Project struct {
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Location         string          `json:"location"`
	PricePerCredit   decimal.Decimal `json:"price_per_credit"`
	AvailableCredits int64           `json:"available_credits"`
	Certification    string          `json:"certification"`
	Description      string          `json:"description"`
	CoBenefits       []string        `json:"co_benefits"`
}

// CostRange is the cost of an amount of credits at a type's price range.
type CostRange struct {
	Type string          `json:"type"`
	Min  decimal.Decimal `json:"min_cost"`
	Avg  decimal.Decimal `json:"avg_cost"`
	Max  decimal.Decimal `json:"max_cost"`
}

// PurchaseResult summarises a simulated purchase.
type PurchaseResult struct {
	Project          string          `json:"project"`
	Credits          decimal.Decimal `json:"credits"`
	Cost             decimal.Decimal `json:"cost"`
	PercentOfTotal   float64         `json:"percent_of_total"`
	RemainingCredits decimal.Decimal `json:"remaining_credits"`
}
