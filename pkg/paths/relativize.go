package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/crosskit/pkg/logging"
)

// CommonRoot returns the longest path prefix shared by two absolute paths.
// It walks up from relativeTo one segment at a time until the remainder is
// a prefix of source. Two absolute paths always share at least the
// filesystem root, so running out of segments indicates a broken
// precondition (a non-absolute input) and panics.
func CommonRoot(source, relativeTo string) string {
	root := relativeTo
	for {
		if isPathPrefix(source, root) {
			return root
		}
		parent := filepath.Dir(root)
		if parent == root {
			panic(fmt.Sprintf("paths: %q and %q have no common root", source, relativeTo))
		}
		root = parent
	}
}

// Relativize computes the relative path from relativeTo to source: one ".."
// segment per segment of relativeTo's tail below the common root, followed
// by source's tail below the common root. Joining the result back onto
// relativeTo yields source again.
//
// Both inputs must be absolute. A relative input is a programming error
// upstream and panics rather than returning an error.
func Relativize(source, relativeTo string) string {
	if !filepath.IsAbs(source) {
		panic(fmt.Sprintf("paths: source %q is not absolute", source))
	}
	if !filepath.IsAbs(relativeTo) {
		panic(fmt.Sprintf("paths: relativeTo %q is not absolute", relativeTo))
	}
	source = filepath.Clean(source)
	relativeTo = filepath.Clean(relativeTo)

	root := CommonRoot(source, relativeTo)
	srcTail := segments(strings.TrimPrefix(source, root))
	destTail := segments(strings.TrimPrefix(relativeTo, root))

	parts := make([]string, 0, len(destTail)+len(srcTail))
	for range destTail {
		parts = append(parts, "..")
	}
	parts = append(parts, srcTail...)

	rel := filepath.Join(parts...)
	if rel == "" {
		rel = "."
	}

	logger := logging.GetLogger("paths")
	logger.Debug().Str("source", source).Str("relativeTo", relativeTo).Str("result", rel).Msg("Relativized path")
	return rel
}

// PrependSearchPath returns searchPath with dir prepended as its first
// entry. The current value is an explicit argument rather than an ambient
// environment read, so callers decide both what to compose and whether to
// apply the result.
func PrependSearchPath(dir, searchPath string) string {
	if searchPath == "" {
		return dir
	}
	return dir + string(os.PathListSeparator) + searchPath
}

// isPathPrefix reports whether prefix covers path on whole-segment
// boundaries ("/a/b" prefixes "/a/b/c" but not "/a/bc").
func isPathPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	if prefix == string(filepath.Separator) {
		return true
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

// segments splits a path remainder into its non-empty components.
func segments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, string(filepath.Separator)) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
