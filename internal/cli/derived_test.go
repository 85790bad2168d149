package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/benchmark"
	"github.com/rshade/carbonfocus/internal/credits"
)

func TestBenchmark(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "benchmark", "--input", testdata("plant.yaml"), "-o", "json")
	require.NoError(t, err)

	var got benchmark.Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Manufacturing", got.Industry)
	assert.InDelta(t, plantTotal/40, got.Intensity, 1e-9)
	assert.InDelta(t, plantTotal/250, got.PerEmployee, 1e-9)
	assert.NotEmpty(t, got.CountryComparison)

	out, err = env.run(t, "benchmark", "--input", testdata("plant.yaml"), "--industry", "Underwater Basket Weaving")
	require.NoError(t, err)
	assert.Contains(t, out, "Benchmark: Other")
	assert.Contains(t, out, "Per employee")
}

func TestBenchmark_ListIndustries(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "benchmark", "--list-industries", "-o", "json")
	require.NoError(t, err)

	var industries []string
	require.NoError(t, json.Unmarshal([]byte(out), &industries))
	assert.Equal(t, benchmark.Industries(), industries)
}

func TestStrategies(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "strategies", "--input", testdata("plant.yaml"), "-o", "json")
	require.NoError(t, err)

	var got struct {
		DominantScope   string   `json:"dominant_scope"`
		Strategies      []any    `json:"strategies"`
		Industry        string   `json:"industry"`
		IndustryActions []string `json:"industry_actions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Scope 2", got.DominantScope)
	assert.Len(t, got.Strategies, 9)
	assert.Equal(t, "Manufacturing", got.Industry)
	assert.NotEmpty(t, got.IndustryActions)

	out, err = env.run(t, "strategies", "--input", testdata("plant.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "largest source: Scope 2")
	assert.Contains(t, out, "Manufacturing actions")
}

func TestCreditsTypesAndProjects(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "credits", "types")
	require.NoError(t, err)
	assert.Contains(t, out, "Direct Air Capture")
	assert.Contains(t, out, "$500.00")

	out, err = env.run(t, "credits", "projects", "--type", "renewable energy", "-o", "json")
	require.NoError(t, err)
	var projects []credits.Project
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	require.NotEmpty(t, projects)
	for _, p := range projects {
		assert.Equal(t, "Renewable Energy", p.Type)
	}

	_, err = env.run(t, "credits", "projects", "--type", "Moon Mining")
	require.ErrorIs(t, err, credits.ErrUnknownCreditType)
}

func TestCreditsEstimate(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "credits", "estimate", "--amount", "100",
		"--project", "Wind Farm Development", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Amount  decimal.Decimal     `json:"amount"`
		Costs   []credits.CostRange `json:"costs"`
		Project string              `json:"project"`
		Cost    decimal.Decimal     `json:"cost"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Costs, len(credits.Types()))
	assert.Equal(t, "Renewable Energy", got.Costs[0].Type)
	assert.True(t, decimal.NewFromInt(800).Equal(got.Costs[0].Avg), got.Costs[0].Avg.String())
	assert.Equal(t, "Wind Farm Development", got.Project)
	assert.True(t, decimal.NewFromInt(700).Equal(got.Cost), got.Cost.String())

	out, err = env.run(t, "credits", "estimate", "--percentage", "50", "--input", testdata("plant.yaml"), "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, plantTotal/2, got.Amount.InexactFloat64(), 1e-9)
}

func TestCreditsEstimate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"neither flag", []string{"credits", "estimate"}},
		{"both flags", []string{"credits", "estimate", "--amount", "1", "--percentage", "5"}},
		{"negative amount", []string{"credits", "estimate", "--amount", "-3"}},
		{"bad amount", []string{"credits", "estimate", "--amount", "lots"}},
		{"percentage out of range", []string{"credits", "estimate", "--percentage", "150", "--input", testdata("plant.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupCLITest(t)
			_, err := env.run(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestCreditsPurchase(t *testing.T) {
	env := setupCLITest(t)

	out, err := env.run(t, "credits", "purchase", "Wind Farm Development",
		"--credits", "10", "--total", "100", "-o", "json")
	require.NoError(t, err)

	var got credits.PurchaseResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, decimal.NewFromInt(70).Equal(got.Cost), got.Cost.String())
	assert.InDelta(t, 10, got.PercentOfTotal, 1e-9)
	assert.True(t, decimal.NewFromInt(74990).Equal(got.RemainingCredits))

	_, err = env.run(t, "credits", "purchase", "Wind Farm Development", "--credits", "75001", "--total", "100")
	require.ErrorIs(t, err, credits.ErrInsufficientCredits)

	_, err = env.run(t, "credits", "purchase", "Wind Farm Development", "--credits", "0", "--total", "100")
	require.ErrorIs(t, err, credits.ErrInvalidAmount)

	_, err = env.run(t, "credits", "purchase", "Nowhere", "--credits", "1")
	require.ErrorIs(t, err, credits.ErrUnknownProject)

	out, err = env.run(t, "--no-session", "credits", "purchase", "Wind Farm Development", "--credits", "5")
	require.NoError(t, err)
	assert.NotContains(t, out, "Offsets:")
	assert.Contains(t, out, "$35.00")
}

func TestReport(t *testing.T) {
	env := setupCLITest(t)

	_, err := env.run(t, "inventory", "calculate", testdata("plant.yaml"))
	require.NoError(t, err)
	_, err = env.run(t, "targets", "project", "--framework", "paris")
	require.NoError(t, err)

	out, err := env.run(t, "report", "--format", "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# GHG Emissions Report: Acme Manufacturing"), out)
	assert.Contains(t, out, "2030")

	path := filepath.Join(t.TempDir(), "reports", "ghg.json")
	out, err = env.run(t, "report", "--format", "json", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rep map[string]any
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.NotEmpty(t, rep["id"])
	assert.NotNil(t, rep["target"])

	_, err = env.run(t, "report", "--format", "pdf")
	require.Error(t, err)
}

func TestSession_ShowAndClear(t *testing.T) {
	env := setupCLITest(t)

	_, err := env.run(t, "session", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inventory available")

	_, err = env.run(t, "inventory", "calculate", testdata("plant.yaml"))
	require.NoError(t, err)

	out, err := env.run(t, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Manufacturing")
	assert.Contains(t, out, testdata("plant.yaml"))
	assert.DirExists(t, filepath.Join(env.projectConfigDir(), "session"))

	out, err = env.run(t, "session", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Session cleared")

	_, err = env.run(t, "session", "show")
	require.Error(t, err)

	out, err = env.run(t, "--no-session", "session", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "disabled")
}
