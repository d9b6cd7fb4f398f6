//go:build windows

package executor

import "os/exec"

// setProcessGroup is a no-op on Windows; job objects would be the closer
// analogue but are out of scope for this engine — there is no forcible
// kill on interrupt, so no grouping is required to act on the child.
func setProcessGroup(cmd *exec.Cmd) {}

// classifyExit turns a *exec.ExitError into a typed Error. Windows has no
// signal-terminated exit status, so only NonZeroExit is produced.
func classifyExit(err error) *Error {
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return nil
	}
	return &Error{Kind: NonZeroExit, ExitCode: exitErr.ExitCode(), Err: err}
}
