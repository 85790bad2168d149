// Package benchmark compares an inventory against industry peers and
// national per-capita emissions.
//
// All reference tables are static. Industries that are not recognised
// fall back to the "Other" row.
package benchmark
