// Package relpath computes the relative path leading from one absolute path to another.
package relpath

import (
	"path/filepath"
	"strings"
)

const (
	// parent is the token for moving one directory up.
	parent = ".."

	// joinSep separates the tokens of a result, independent of the platform separator.
	joinSep = "/"
)

// Resolve returns the relative path from "from" to "to", both absolute paths
// using the platform separator. Identical paths return an empty string.
func Resolve(from, to string) string {
	return ResolveSep(from, to, filepath.Separator)
}

// ResolveSep is Resolve with an explicit separator used for parsing the inputs.
// The result is always joined with a forward slash.
//
// Segments are compared index by index, starting after the leading separator.
// From the first differing index on, every remaining from-segment adds a ".."
// in front and every remaining to-segment is appended.
func ResolveSep(from, to string, sep rune) string {
	var (
		fromSegs = segments(from, sep)
		toSegs   = segments(to, sep)
		n        = max(len(fromSegs), len(toSegs))
		ups      int
		downs    []string
		diverged bool
	)

	// index 0 is the empty segment in front of the leading separator
	for k := 1; k < n; k++ {
		fromSeg, fromOK := at(fromSegs, k)
		toSeg, toOK := at(toSegs, k)

		if !diverged && fromOK && toOK && fromSeg == toSeg {
			continue
		}

		if fromOK {
			ups++
		}

		if toOK {
			downs = append(downs, toSeg)
		}

		diverged = true
	}

	tokens := make([]string, 0, ups+len(downs))
	for range ups {
		tokens = append(tokens, parent)
	}

	return strings.Join(append(tokens, downs...), joinSep)
}

// segments collapses doubled separators, splits p and drops a blank trailing segment.
func segments(p string, sep rune) []string {
	s := string(sep)
	double := s + s

	for strings.Contains(p, double) {
		p = strings.ReplaceAll(p, double, s)
	}

	segs := strings.Split(p, s)
	if last := len(segs) - 1; strings.TrimSpace(segs[last]) == "" {
		segs = segs[:last]
	}

	return segs
}

func at(segs []string, k int) (string, bool) {
	if k < len(segs) {
		return segs[k], true
	}

	return "", false
}
