package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := newTable(&buf, "Scope", "Emissions")
	tbl.row("Scope 1", "1.85")
	tbl.row("Scope 2", "27.60")
	require.NoError(t, tbl.flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "SCOPE    EMISSIONS", lines[0])
	assert.Equal(t, "-----    ---------", lines[1])
	assert.Equal(t, "Scope 1  1.85", lines[2])
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	rows := []breakdownRow{
		{Scope: "Scope 1", Category: "natural_gas", Label: "Natural Gas", Emissions: 1.85, Share: 100},
	}
	require.NoError(t, writeNDJSON(&buf, rows))
	assert.Equal(t,
		`{"scope":"Scope 1","category":"natural_gas","label":"Natural Gas","emissions":1.85,"share":100}`+"\n",
		buf.String())

	buf.Reset()
	require.NoError(t, writeNDJSON(&buf, []breakdownRow{}))
	assert.Empty(t, buf.String())
}

func TestIsWriterTerminal(t *testing.T) {
	assert.False(t, isWriterTerminal(&bytes.Buffer{}))
}

func TestThresholdExitError(t *testing.T) {
	var err error = &ThresholdExitError{ExitCode: 4, Reason: "too much"}
	assert.Equal(t, "too much", err.Error())

	var target *ThresholdExitError
	require.True(t, errors.As(errors.Join(errors.New("outer"), err), &target))
	assert.Equal(t, 4, target.ExitCode)
}
