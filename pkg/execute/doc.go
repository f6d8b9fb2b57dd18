// Package execute runs external commands and normalizes their outcomes.
//
// Every shape of "did this command succeed" - a wait error, a captured
// output, a bare start - collapses into the same two-variant CommandError
// taxonomy, so callers never branch on which os/exec primitive was used.
// The package also provides the concrete commands crosskit shells out to
// (ln, git, rustup) and a single-buffer pipe between two processes.
package execute
