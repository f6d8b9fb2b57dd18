// pkg/execute/result_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: POSIX sh
// PURPOSE: Test normalization of process outcomes into CommandError

package execute_test

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/arthur-debert/crosskit/pkg/execute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunResult(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *exec.Cmd
		wantKind execute.ErrorKind
		wantCode int
		hasCode  bool
		wantOK   bool
	}{
		{
			name:   "zero exit is success",
			cmd:    exec.Command("sh", "-c", "exit 0"),
			wantOK: true,
		},
		{
			name:     "nonzero exit carries the code",
			cmd:      exec.Command("sh", "-c", "exit 2"),
			wantKind: execute.KindNonZeroExit,
			wantCode: 2,
			hasCode:  true,
		},
		{
			name:     "signal termination carries no code",
			cmd:      exec.Command("sh", "-c", "kill -9 $$"),
			wantKind: execute.KindNonZeroExit,
			hasCode:  false,
		},
		{
			name:     "missing executable fails to spawn",
			cmd:      exec.Command("crosskit-no-such-tool"),
			wantKind: execute.KindSpawnFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute.RunResult(tt.cmd.Run())

			if tt.wantOK {
				assert.NoError(t, err)
				return
			}

			var cmdErr *execute.CommandError
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tt.wantKind, cmdErr.Kind)
			assert.Equal(t, tt.hasCode, cmdErr.HasCode)
			if tt.hasCode {
				assert.Equal(t, tt.wantCode, cmdErr.Code)
			}
		})
	}
}

func TestRunResultNilStaysNil(t *testing.T) {
	assert.NoError(t, execute.RunResult(nil))
}

func TestRunResultPreservesSpawnError(t *testing.T) {
	err := execute.RunResult(exec.Command("crosskit-no-such-tool").Run())

	var cmdErr *execute.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, execute.KindSpawnFailed, cmdErr.Kind)
	// The underlying OS error is wrapped verbatim
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestOutputResult(t *testing.T) {
	t.Run("captured output only on success", func(t *testing.T) {
		out, err := execute.OutputResult(exec.Command("sh", "-c", "printf hello").Output())
		require.NoError(t, err)
		assert.Equal(t, "hello", string(out))
	})

	t.Run("no output on failure", func(t *testing.T) {
		out, err := execute.OutputResult(exec.Command("sh", "-c", "printf partial; exit 1").Output())
		assert.Nil(t, out)

		var cmdErr *execute.CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, execute.KindNonZeroExit, cmdErr.Kind)
	})
}

func TestStartResult(t *testing.T) {
	t.Run("successful start", func(t *testing.T) {
		cmd := exec.Command("sh", "-c", "exit 0")
		require.NoError(t, execute.StartResult(cmd.Start()))
		// The handle stays live; no exit check happened yet
		require.NotNil(t, cmd.Process)
		_ = cmd.Wait()
	})

	t.Run("spawn failure", func(t *testing.T) {
		cmd := exec.Command("crosskit-no-such-tool")
		err := execute.StartResult(cmd.Start())

		var cmdErr *execute.CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, execute.KindSpawnFailed, cmdErr.Kind)
	})
}

func TestExitCode(t *testing.T) {
	err := execute.RunResult(exec.Command("sh", "-c", "exit 7").Run())
	code, ok := execute.ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 7, code)

	_, ok = execute.ExitCode(nil)
	assert.False(t, ok)

	_, ok = execute.ExitCode(errors.New("plain"))
	assert.False(t, ok)

	signalErr := execute.RunResult(exec.Command("sh", "-c", "kill -9 $$").Run())
	_, ok = execute.ExitCode(signalErr)
	assert.False(t, ok, "signal termination has no exit code")
}
