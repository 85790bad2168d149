package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/greenops"
)

// View renders the current view (Bubble Tea interface).
func (m InventoryModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	default:
		return m.renderListView()
	}
}

func (m InventoryModel) renderListView() string {
	sections := []string{
		m.renderHeader(),
		m.renderTotals(),
		m.table.View(),
		HelpStyle.Render(fmt.Sprintf("[%s]  0 all · 1-3 scope · tab cycle · enter detail · q quit",
			scopeLabel(m.scope))),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m InventoryModel) renderHeader() string {
	title := m.title
	if title == "" {
		title = "Emissions inventory"
	}
	return HeaderStyle.Render(title)
}

func (m InventoryModel) renderTotals() string {
	parts := []string{
		LabelStyle.Render("Total ") + ValueStyle.Render(greenops.FormatTonnes(m.snap.Total)),
	}
	for _, s := range factors.Scopes() {
		parts = append(parts, fmt.Sprintf("%s %s (%.1f%%)",
			LabelStyle.Render(s.String()),
			ValueStyle.Render(greenops.FormatFloat(m.snap.ScopeTotal(s), 2)), //nolint:mnd // display precision
			m.snap.Share(s)))
	}
	return BoxStyle.Width(m.width - borderPadding).Render(strings.Join(parts, "   "))
}

func (m InventoryModel) renderDetailView() string {
	row, ok := m.Selected()
	if !ok {
		return m.renderListView()
	}

	def, err := factors.Lookup(row.Category)
	lines := []string{
		HeaderStyle.Render(row.Label),
		LabelStyle.Render("Scope:      ") + row.Scope.String(),
		LabelStyle.Render("Emissions:  ") + greenops.FormatTonnes(row.Emissions),
		LabelStyle.Render("Share:      ") + fmt.Sprintf("%.1f%% of total", row.Share),
	}
	if err == nil && def.Factor > 0 && !def.PassThrough {
		lines = append(lines, LabelStyle.Render("Factor:     ")+
			fmt.Sprintf("%g tCO2e per %s", def.Factor, def.Unit))
	}
	if !m.equiv.IsEmpty {
		lines = append(lines, "", LabelStyle.Render("Inventory equals: ")+m.equiv.DisplayText)
	}
	lines = append(lines, "", HelpStyle.Render("esc back · q quit"))

	return BoxStyle.Width(m.width - borderPadding).Render(strings.Join(lines, "\n"))
}
