package execute

import (
	"os/exec"

	"github.com/arthur-debert/crosskit/pkg/logging"
	"github.com/arthur-debert/crosskit/pkg/paths"
)

// ForceSymlink creates a symlink at dest pointing to src, replacing any
// existing link at dest. The -f flag makes this idempotent by recreation
// rather than by skipping.
func ForceSymlink(src, dest string) error {
	args := []string{"-sf", src, dest}
	logging.LogCommand("ln", args)
	return RunResult(exec.Command("ln", args...).Run())
}

// RelativeSymlink creates a symlink at absDest whose target is expressed
// relative to absDest, so the link survives relocation of the containing
// tree. Both paths must be absolute.
func RelativeSymlink(absSrc, absDest string) error {
	relSrc := paths.Relativize(absSrc, absDest)
	return ForceSymlink(relSrc, absDest)
}

// Git runs git scoped to dir with the given arguments. Output is not
// captured; the caller only learns success or failure.
func Git(dir string, args ...string) error {
	gitArgs := append([]string{"-C", dir}, args...)
	logging.LogCommand("git", gitArgs)
	return RunResult(exec.Command("git", gitArgs...).Run())
}

// AddTarget installs the standard library for a cross-compilation target
// triple via rustup.
func AddTarget(triple string) error {
	args := []string{"target", "add", triple}
	logging.LogCommand("rustup", args)
	return RunResult(exec.Command("rustup", args...).Run())
}
