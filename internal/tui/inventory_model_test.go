package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/inventory"
)

func testSnapshot() inventory.Snapshot {
	return inventory.Snapshot{
		Total:       200,
		Scope1Total: 50,
		Scope2Total: 100,
		Scope3Total: 50,
		Scope1Breakdown: inventory.Breakdown{
			{Category: factors.NaturalGas, Label: "Natural Gas", Emissions: 30},
			{Category: factors.Gasoline, Label: "Gasoline", Emissions: 20},
		},
		Scope2Breakdown: inventory.Breakdown{
			{Category: factors.PurchasedElectricity, Label: "Purchased Electricity", Emissions: 100},
		},
		Scope3Breakdown: inventory.Breakdown{
			{Category: factors.BusinessTravel, Label: "Business Travel", Emissions: 50},
		},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m InventoryModel, msg tea.Msg) (InventoryModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(InventoryModel)
	require.True(t, ok)
	return model, cmd
}

func TestNewInventoryModel(t *testing.T) {
	m := NewInventoryModel(context.Background(), "Acme 2023", testSnapshot())

	assert.Equal(t, ViewStateList, m.State())
	require.Len(t, m.Rows(), 4)
	assert.Equal(t, factors.Scope1, m.Rows()[0].Scope)
	assert.InDelta(t, 15.0, m.Rows()[0].Share, 1e-9)
	assert.InDelta(t, 50.0, m.Rows()[2].Share, 1e-9)
	assert.Nil(t, m.Init())
}

func TestInventoryModel_ScopeFilter(t *testing.T) {
	m := NewInventoryModel(context.Background(), "", testSnapshot())

	tests := []struct {
		key  string
		want int
	}{
		{"1", 2},
		{"2", 1},
		{"3", 1},
		{"0", 4},
	}
	for _, tt := range tests {
		t.Run("key "+tt.key, func(t *testing.T) {
			m, _ = update(t, m, key(tt.key))
			assert.Len(t, m.Rows(), tt.want)
		})
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Len(t, m.Rows(), 2, "tab from all moves to scope 1")
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Len(t, m.Rows(), 4, "tab wraps back to all scopes")
}

func TestInventoryModel_DetailTransitions(t *testing.T) {
	m := NewInventoryModel(context.Background(), "", testSnapshot())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateDetail, m.State())
	view := m.View()
	assert.Contains(t, view, "Natural Gas")
	assert.Contains(t, view, "Scope 1")
	assert.Contains(t, view, "tCO2e per m³")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, ViewStateList, m.State())

	m, cmd := update(t, m, key("q"))
	assert.Equal(t, ViewStateQuitting, m.State())
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestInventoryModel_EmptySnapshot(t *testing.T) {
	m := NewInventoryModel(context.Background(), "", inventory.Snapshot{})

	assert.Empty(t, m.Rows())
	_, ok := m.Selected()
	assert.False(t, ok)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateList, m.State(), "enter on an empty table stays in the list")
	assert.Contains(t, m.View(), "Emissions inventory")
}

func TestInventoryModel_WindowResize(t *testing.T) {
	m := NewInventoryModel(context.Background(), "Acme", testSnapshot())

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 40, m.height)

	view := m.View()
	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "Purchased Electricity")
}
