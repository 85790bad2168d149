package cli_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/cli"
	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/inventory"
)

// plantTotal is natural gas 1000 m³ plus 100 MWh of European grid electricity.
const plantTotal = 1000*0.00185 + 100000*0.000276

type calculateJSON struct {
	Organization input.Profile      `json:"organization"`
	Snapshot     inventory.Snapshot `json:"snapshot"`
	SessionID    string             `json:"session_id"`
}

func TestInventoryCalculate_Table(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "inventory", "calculate", testdata("plant.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "Emissions inventory: Acme Manufacturing")
	assert.Contains(t, out, "SCOPE")
	assert.Contains(t, out, "Natural Gas")
	assert.Contains(t, out, "Purchased Electricity")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "29.45")
}

func TestInventoryCalculate_JSON(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "inventory", "calculate", testdata("plant.yaml"), testdata("office.yaml"), "-o", "json")
	require.NoError(t, err)

	var got calculateJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Acme Manufacturing", got.Organization.Name)
	assert.NotEmpty(t, got.SessionID)
	assert.InDelta(t, plantTotal+200*0.00185+20000*0.00017, got.Snapshot.Total, 1e-9)
	assert.InDelta(t,
		got.Snapshot.Scope1Total+got.Snapshot.Scope2Total+got.Snapshot.Scope3Total,
		got.Snapshot.Total, 1e-9)
}

func TestInventoryCalculate_NDJSON(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "inventory", "calculate", testdata("plant.yaml"), "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Scope 1", first["scope"])
	assert.Equal(t, "natural_gas", first["category"])
	assert.InDelta(t, 1.85, first["emissions"], 1e-9)
}

func TestInventoryCalculate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no files", []string{"inventory", "calculate"}, "requires at least 1 arg"},
		{"missing file", []string{"inventory", "calculate", testdata("missing.yaml")}, "failed to read"},
		{"invalid file", []string{"inventory", "calculate", testdata("invalid.yaml")}, "moon_dust"},
		{"bad output", []string{"inventory", "calculate", testdata("plant.yaml"), "-o", "xml"}, "unsupported output format"},
		{"bad exit code", []string{"inventory", "calculate", testdata("plant.yaml"), "--exit-code", "0"}, "--exit-code"},
		{"interactive without terminal", []string{"inventory", "calculate", testdata("plant.yaml"), "-i"}, "requires a terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupCLITest(t)
			_, err := env.run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInventoryCalculate_FailAbove(t *testing.T) {
	env := setupCLITest(t)

	_, err := env.run(t, "inventory", "calculate", testdata("plant.yaml"), "--fail-above", "10", "--exit-code", "3")
	require.Error(t, err)

	var exitErr *cli.ThresholdExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode)
	assert.Contains(t, exitErr.Reason, "exceed the limit")

	_, err = env.run(t, "inventory", "calculate", testdata("plant.yaml"), "--fail-above", "100")
	require.NoError(t, err)
}

func TestInventoryFactors(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "inventory", "factors")
	require.NoError(t, err)
	assert.Contains(t, out, "natural_gas")
	assert.Contains(t, out, "entered as tCO2e")
	assert.Contains(t, out, "North America")

	out, err = env.run(t, "inventory", "factors", "--scope", "2", "-o", "json")
	require.NoError(t, err)
	var got struct {
		Categories []map[string]any `json:"categories"`
		Regions    []map[string]any `json:"electricity_regions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Categories, 4)
	assert.Len(t, got.Regions, 9)

	_, err = env.run(t, "inventory", "factors", "--scope", "4")
	require.Error(t, err)
}
