// Package paths computes the relative paths crosskit uses to build
// relocatable symlinks, plus small pure path compositions.
//
// All functions here are pure with respect to the filesystem: they never
// stat, read, or resolve anything on disk.
package paths
