// Package session persists the most recent inventory between command
// invocations so later commands (targets, benchmark, report) can reuse it.
//
// There is exactly one current session per store directory. Each save
// replaces it wholesale; entries carry a TTL and expire on read.
package session
