// Package api serves the calculator over a small local JSON HTTP API.
//
// Every response is wrapped in the same envelope: a status code, the
// server's current time in milliseconds, a status text and the payload
// under "data". Calculations go through the engine, so a POST to
// /api/v1/inventory also replaces the saved session that the session-based
// endpoints (benchmark, strategies, report) read from.
package api
