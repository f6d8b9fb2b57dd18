// Package filesystem provides filesystem implementations for crosskit.
//
// This package defines the FS interface used by code that touches the
// filesystem, along with the standard OS implementation and an
// afero-backed implementation for tests.
package filesystem
