package tui

import "github.com/charmbracelet/lipgloss"

// Default terminal dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 24
	borderPadding = 2
	chromeHeight  = 8
	minTableRows  = 3
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("22"))
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
