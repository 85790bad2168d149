package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/greenops"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/logging"
)

// ViewState is the viewer's screen.
type ViewState int

const (
	// ViewStateList shows the breakdown table.
	ViewStateList ViewState = iota
	// ViewStateDetail shows one breakdown line.
	ViewStateDetail
	// ViewStateQuitting is set just before the program exits.
	ViewStateQuitting
)

// allScopes is the scope filter value that shows every scope.
const allScopes factors.Scope = 0

// Row is one line of the breakdown table.
type Row struct {
	Scope     factors.Scope
	Category  factors.Category
	Label     string
	Emissions float64
	// Share is the line's percentage of the inventory total.
	Share float64
}

// InventoryModel is the Bubble Tea model for the inventory viewer.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type InventoryModel struct {
	state ViewState
	ctx   context.Context
	title string
	snap  inventory.Snapshot
	equiv greenops.Summary

	allRows []Row
	rows    []Row
	scope   factors.Scope

	table  table.Model
	width  int
	height int
}

// NewInventoryModel builds the viewer for snap. title is shown in the header.
func NewInventoryModel(ctx context.Context, title string, snap inventory.Snapshot) InventoryModel {
	m := InventoryModel{
		state:   ViewStateList,
		ctx:     ctx,
		title:   title,
		snap:    snap,
		equiv:   greenops.FromSnapshot(snap),
		allRows: buildRows(snap),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.applyFilter()
	m.table = m.buildTable()
	return m
}

func buildRows(snap inventory.Snapshot) []Row {
	var rows []Row
	for _, scope := range factors.Scopes() {
		for _, line := range snap.ScopeBreakdown(scope) {
			share := 0.0
			if snap.Total > 0 {
				share = line.Emissions / snap.Total * 100 //nolint:mnd // percentage
			}
			rows = append(rows, Row{
				Scope:     scope,
				Category:  line.Category,
				Label:     line.Label,
				Emissions: line.Emissions,
				Share:     share,
			})
		}
	}
	return rows
}

// Init initializes the model (Bubble Tea interface).
func (m InventoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.buildTable()
		return m, nil
	case tea.KeyMsg:
		if m.state == ViewStateDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m InventoryModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.state = ViewStateQuitting
		return m, tea.Quit
	case "enter":
		if len(m.rows) > 0 {
			m.state = ViewStateDetail
		}
		return m, nil
	case "0":
		m.setScope(allScopes)
		return m, nil
	case "1":
		m.setScope(factors.Scope1)
		return m, nil
	case "2":
		m.setScope(factors.Scope2)
		return m, nil
	case "3":
		m.setScope(factors.Scope3)
		return m, nil
	case "tab":
		m.setScope((m.scope + 1) % (factors.Scope3 + 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InventoryModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.state = ViewStateQuitting
		return m, tea.Quit
	case "esc", "backspace", "enter":
		m.state = ViewStateList
	}
	return m, nil
}

func (m *InventoryModel) setScope(scope factors.Scope) {
	m.scope = scope
	m.applyFilter()
	m.table = m.buildTable()

	log := logging.FromContext(m.ctx)
	log.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("scope", scopeLabel(scope)).
		Int("rows", len(m.rows)).
		Msg("scope filter changed")
}

func (m *InventoryModel) applyFilter() {
	if m.scope == allScopes {
		m.rows = m.allRows
		return
	}
	m.rows = m.rows[:0:0]
	for _, r := range m.allRows {
		if r.Scope == m.scope {
			m.rows = append(m.rows, r)
		}
	}
}

// Selected returns the highlighted row, if any.
func (m InventoryModel) Selected() (Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[i], true
}

// Rows returns the rows currently shown.
func (m InventoryModel) Rows() []Row {
	return m.rows
}

// State returns the current screen.
func (m InventoryModel) State() ViewState {
	return m.state
}

func (m InventoryModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Scope", Width: 8},       //nolint:mnd // Column width.
		{Title: "Category", Width: 34},   //nolint:mnd // Column width.
		{Title: "tCO2e", Width: 14},      //nolint:mnd // Column width.
		{Title: "% of total", Width: 10}, //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{
			r.Scope.String(),
			r.Label,
			greenops.FormatFloat(r.Emissions, 2), //nolint:mnd // display precision
			fmt.Sprintf("%.1f%%", r.Share),
		}
	}

	height := m.height - chromeHeight
	if height < minTableRows {
		height = minTableRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)
	return t
}

func scopeLabel(scope factors.Scope) string {
	if scope == allScopes {
		return "All scopes"
	}
	return scope.String()
}
