package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/targets"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func sampleReport(t *testing.T) Report {
	t.Helper()
	snap := inventory.Aggregate(inventory.Input{
		Scope1: inventory.Scope1Input{Values: inventory.Values{factors.NaturalGas: 1000, factors.ProcessEmissions: 8.15}},
		Scope2: inventory.Scope2Input{
			Values: inventory.Values{factors.PurchasedElectricity: 10000},
			Method: inventory.LocationBased{Region: factors.NorthAmerica},
		},
	})
	target, err := targets.ProjectCompounding(targets.Policy{
		BaseEmissions: snap.Total, ReductionPercentage: 42, BaseYear: 2023, TargetYear: 2030,
	})
	require.NoError(t, err)

	profile := input.Profile{Name: "Acme", Industry: "Retail", Employees: 10, Revenue: 2, Year: 2023}
	return Build(profile, snap, Options{Now: fixedNow, Target: &target})
}

func TestBuild(t *testing.T) {
	r := sampleReport(t)

	id, err := ulid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(fixedNow()), id.Time())
	assert.Equal(t, fixedNow(), r.GeneratedAt)

	assert.InDelta(t, 14.29, r.Total, 1e-9)
	assert.InDelta(t, 1.429, r.PerEmployee, 1e-9)
	assert.InDelta(t, 7.145, r.Intensity, 1e-9)
	assert.Equal(t, "Leading", r.PerformanceClass)

	require.Len(t, r.Scopes, 3)
	assert.Equal(t, "Scope 1", r.Scopes[0].Scope)
	assert.InDelta(t, 10.0/14.29*100, r.Scopes[0].Share, 1e-9)
	assert.InDelta(t, 0.0, r.Scopes[2].Share, 0)

	assert.Len(t, r.Breakdown(factors.Scope1), 2)
	assert.Empty(t, r.Breakdown(factors.Scope3))
	assert.False(t, r.Equivalencies.IsEmpty)
	assert.Equal(t, factors.Scope1, r.Recommendations[0].Scope)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatText, false))
	out := buf.String()

	for _, want := range []string{
		"GHG EMISSIONS REPORT: Acme",
		"COMPANY INFORMATION",
		"EMISSIONS SUMMARY",
		"14.29 tCO2e",
		"REDUCTION TARGETS",
		"2030 Target",
		"SCOPE 1 BREAKDOWN",
		"Natural Gas",
		"SCOPE 2 BREAKDOWN",
		"RECOMMENDATIONS",
		"1. Energy efficiency improvements",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "SCOPE 3 BREAKDOWN")
	assert.NotContains(t, out, "\x1b[")
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), "md", false))
	out := buf.String()

	assert.Contains(t, out, "# GHG Emissions Report: Acme")
	assert.Contains(t, out, "## Scope 1 Breakdown")
	assert.Contains(t, out, "| Natural Gas | 1.85 |")
	assert.Contains(t, out, "| Revenue | $2.0 million |")
	assert.Contains(t, out, "### Industry Actions")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatJSON, false))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.InDelta(t, 14.29, decoded["total"], 1e-9)
	assert.Contains(t, decoded, "target")

	breakdowns, ok := decoded["breakdowns"].(map[string]any)
	require.True(t, ok)
	scope1, ok := breakdowns["scope1"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1.85, scope1["Natural Gas"], 1e-9)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, Report{}, "pdf", false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestBuild_WithoutTarget(t *testing.T) {
	r := Build(input.Profile{Name: "Empty", Employees: 1, Revenue: 1, Year: 2023}, inventory.Snapshot{}, Options{Now: fixedNow})
	assert.Nil(t, r.Target)
	assert.True(t, r.Equivalencies.IsEmpty)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r, false))
	assert.NotContains(t, buf.String(), "REDUCTION TARGETS")
}
