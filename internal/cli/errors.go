package cli

// ThresholdExitError carries the process exit code for an inventory whose
// total exceeded --fail-above. main maps it to os.Exit.
type ThresholdExitError struct {
	ExitCode int
	Reason   string
}

func (e *ThresholdExitError) Error() string {
	return e.Reason
}
