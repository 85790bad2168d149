// Package targets derives emissions reduction targets from a base-year
// inventory.
//
// Two projections are provided and deliberately kept apart:
//
//   - ProjectCompounding solves for a constant annual rate that reaches a
//     percentage reduction by a target year (geometric decay).
//   - ProjectLinear removes a fixed share of base emissions each year and
//     drops to zero at a separately chosen net-zero year.
//
// Both are pure functions of their inputs.
package targets
