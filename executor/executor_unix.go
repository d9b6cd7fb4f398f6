//go:build !windows

package executor

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup puts the child (and anything it forks) in its own
// process group so the scheduler's interrupt handling has a single,
// well-defined target to reason about even though it never signals the
// child directly — the engine always lets the current run finish.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// classifyExit turns a *exec.ExitError into a typed Error, decoding a
// signal-terminated exit via syscall.WaitStatus and rendering the signal's
// name through golang.org/x/sys/unix rather than a hand-rolled lookup table.
func classifyExit(err error) *Error {
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return nil
	}

	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return &Error{Kind: NonZeroExit, ExitCode: exitErr.ExitCode(), Err: err}
	}

	if status.Signaled() {
		sig := unix.Signal(status.Signal())
		return &Error{Kind: SignalTerminated, Signal: sig.String(), Err: err}
	}

	return &Error{Kind: NonZeroExit, ExitCode: status.ExitStatus(), Err: err}
}
