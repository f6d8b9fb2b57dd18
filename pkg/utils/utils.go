// Package utils holds small helpers shared across crosskit.
package utils

import (
	"regexp"

	"github.com/arthur-debert/crosskit/pkg/errors"
	"github.com/arthur-debert/crosskit/pkg/filesystem"
)

// ReadString reads the whole file at path into a string.
func ReadString(fsys filesystem.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return string(data), nil
}

// HasMatch reports whether re matches body with any capture group (or the
// whole match) equal to pattern exactly.
func HasMatch(re *regexp.Regexp, body, pattern string) bool {
	for _, group := range re.FindStringSubmatch(body) {
		if group == pattern {
			return true
		}
	}
	return false
}
