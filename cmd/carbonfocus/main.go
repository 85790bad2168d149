// Command carbonfocus calculates GHG Protocol emissions inventories and
// derives targets, benchmarks, offset estimates and reports from them.
package main

import (
	"errors"
	"os"

	"github.com/rshade/carbonfocus/internal/cli"
	"github.com/rshade/carbonfocus/pkg/version"
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// extractExitCode maps a command error to the process exit code: 0 on
// success, the threshold's code for a ThresholdExitError, 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var thresholdErr *cli.ThresholdExitError
	if errors.As(err, &thresholdErr) {
		return thresholdErr.ExitCode
	}
	return 1
}
