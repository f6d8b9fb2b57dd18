package execute

import (
	"fmt"
	"os/exec"
)

// PipeStage identifies where in a two-process pipeline a failure occurred.
type PipeStage int

const (
	// StageFirst is the producing command failing to spawn or exiting nonzero.
	StageFirst PipeStage = iota
	// StageSecond is the receiving command failing to spawn.
	StageSecond
	// StageTransfer is the write of captured bytes into the receiver failing.
	StageTransfer
)

func (s PipeStage) String() string {
	switch s {
	case StageFirst:
		return "first command"
	case StageSecond:
		return "second command"
	default:
		return "transfer"
	}
}

// PipeError reports a pipeline failure tagged with the stage that failed,
// so diagnostics can point at the correct external command.
type PipeError struct {
	Stage PipeStage
	Err   error
}

func (e *PipeError) Error() string {
	return fmt.Sprintf("pipe failed at %s: %v", e.Stage, e.Err)
}

func (e *PipeError) Unwrap() error {
	return e.Err
}

// Pipe runs first to completion capturing its stdout, then starts second
// with a piped stdin and writes the captured bytes into it, closing the
// pipe afterwards so the receiver sees EOF.
//
// Pipe guarantees successful transfer of bytes, not that the receiver
// ultimately succeeds: the second process's exit status is not awaited.
// Callers that hold the *exec.Cmd may Wait on it themselves.
func Pipe(first, second *exec.Cmd) error {
	out, err := OutputResult(first.Output())
	if err != nil {
		return &PipeError{Stage: StageFirst, Err: err}
	}

	stdin, err := second.StdinPipe()
	if err != nil {
		return &PipeError{Stage: StageSecond, Err: &CommandError{Kind: KindSpawnFailed, Err: err}}
	}
	if err := StartResult(second.Start()); err != nil {
		_ = stdin.Close()
		return &PipeError{Stage: StageSecond, Err: err}
	}

	if _, err := stdin.Write(out); err != nil {
		_ = stdin.Close()
		return &PipeError{Stage: StageTransfer, Err: err}
	}
	if err := stdin.Close(); err != nil {
		return &PipeError{Stage: StageTransfer, Err: err}
	}
	return nil
}
