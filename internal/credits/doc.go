// Package credits estimates the cost of offsetting emissions with carbon
// credits. Money is handled with shopspring/decimal and rounded to cents.
//
// Prices and projects are static sample data, not a live marketplace.
package credits
