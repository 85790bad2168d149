package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/carbonfocus/internal/cli"
	"github.com/rshade/carbonfocus/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if assert.NotNil(t, root) {
			assert.Equal(t, "carbonfocus", root.Use)
			assert.Equal(t, version.GetVersion(), root.Version)
		}
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error returns 0", nil, 0},
		{"threshold exit code 2", &cli.ThresholdExitError{ExitCode: 2, Reason: "over"}, 2},
		{"threshold exit code 42", &cli.ThresholdExitError{ExitCode: 42, Reason: "way over"}, 42},
		{
			"wrapped threshold error",
			fmt.Errorf("calculate: %w", &cli.ThresholdExitError{ExitCode: 3, Reason: "wrapped"}),
			3,
		},
		{
			"joined threshold error",
			errors.Join(errors.New("outer"), &cli.ThresholdExitError{ExitCode: 5, Reason: "joined"}),
			5,
		},
		{"generic error returns 1", errors.New("generic error"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractExitCode(tt.err))
		})
	}
}
