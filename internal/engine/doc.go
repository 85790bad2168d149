// Package engine runs the calculation pipeline shared by the CLI and the
// HTTP server: decode activity documents, validate them, aggregate each
// into a snapshot, consolidate the snapshots and record the result in the
// session store.
//
// Each aggregation is pure and single-threaded. Multiple files are loaded
// and aggregated concurrently, bounded by the engine's concurrency limit,
// and merged in the order they were given so the result is deterministic.
package engine
