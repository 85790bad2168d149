// Package tui provides the interactive terminal viewer for an emissions
// inventory, built on Bubble Tea.
//
// The viewer shows the scope totals above a breakdown table. Number keys
// filter the table to one scope, 0 shows every scope, and enter opens the
// detail view for the selected line.
package tui
