package execute

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrorKind discriminates the two ways an external command can fail.
type ErrorKind int

const (
	// KindSpawnFailed means the process never started; Err holds the
	// underlying OS error verbatim (tool not found, permission denied).
	KindSpawnFailed ErrorKind = iota

	// KindNonZeroExit means the process started and exited unsuccessfully.
	// Code carries the exit code when the OS reported one; HasCode is
	// false when the process was terminated by a signal, which callers
	// must treat as a distinct case from an ordinary nonzero exit.
	KindNonZeroExit
)

// CommandError is the failure half of the normalized command outcome.
type CommandError struct {
	Kind    ErrorKind
	Err     error
	Code    int
	HasCode bool
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case KindSpawnFailed:
		return fmt.Sprintf("unable to spawn command: %v", e.Err)
	default:
		if !e.HasCode {
			return "command terminated by signal"
		}
		return fmt.Sprintf("command exited with status %d", e.Code)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from a normalized command error.
// ok is false when err is not a CommandError, the command never spawned,
// or the process was killed by a signal.
func ExitCode(err error) (code int, ok bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Kind == KindNonZeroExit && cmdErr.HasCode {
		return cmdErr.Code, true
	}
	return 0, false
}

// classifyState normalizes a process's exit status. state.Success() is the
// innermost yes/no primitive; ExitCode() reports -1 for signal-terminated
// processes, which maps to a CommandError without a code.
func classifyState(state *os.ProcessState) error {
	if state.Success() {
		return nil
	}
	if code := state.ExitCode(); code >= 0 {
		return &CommandError{Kind: KindNonZeroExit, Code: code, HasCode: true}
	}
	return &CommandError{Kind: KindNonZeroExit}
}

// RunResult normalizes the error from exec.Cmd.Run or Wait: nil stays nil,
// an exit error becomes KindNonZeroExit, anything else failed to spawn.
func RunResult(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return classifyState(exitErr.ProcessState)
	}
	return &CommandError{Kind: KindSpawnFailed, Err: err}
}

// OutputResult normalizes a captured-output run. The captured bytes are
// returned only when the command spawned and exited successfully.
func OutputResult(out []byte, err error) ([]byte, error) {
	if err := RunResult(err); err != nil {
		return nil, err
	}
	return out, nil
}

// StartResult normalizes the error from exec.Cmd.Start. A start either
// spawns or it doesn't; no exit status exists to check yet.
func StartResult(err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Kind: KindSpawnFailed, Err: err}
}
