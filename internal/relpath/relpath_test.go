package relpath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSep(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want string
	}{
		{"sibling", "/a/b/c", "/a/b/d", "../d"},
		{"identical", "/a/b", "/a/b", ""},
		{"up three", "/a/b/c/d", "/a/x", "../../../x"},
		{"trailing separators", "/a/", "/a/b/", "b"},
		{"child", "/a", "/a/b/c", "b/c"},
		{"parent", "/a/b/c", "/a", "../.."},
		{"root to path", "/", "/a/b", "a/b"},
		{"path to root", "/a/b", "/", "../.."},
		{"no common prefix", "/x/y", "/a/b", "../../a/b"},
		{"diverged stays diverged", "/a/b/c", "/a/x/c", "../../x/c"},
		{"doubled separators", "//a///b//c", "/a/b/d", "../d"},
		{"whitespace trailing segment", "/a/b/ ", "/a/b", ""},
		{"both roots", "/", "/", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveSep(tc.from, tc.to, '/'))
		})
	}
}

func TestResolveSep_Backslash(t *testing.T) {
	assert.Equal(t, "../d/e", ResolveSep(`\a\b\c`, `\a\b\d\e`, '\\'))
	assert.Equal(t, "", ResolveSep(`\a\\b\`, `\a\b`, '\\'))
}

func TestResolve_Idempotent(t *testing.T) {
	sep := string(filepath.Separator)

	for _, p := range []string{
		sep,
		sep + "a",
		sep + "a" + sep + "b" + sep,
		sep + "usr" + sep + "local" + sep + "bin",
	} {
		assert.Emptyf(t, Resolve(p, p), "path %q", p)
	}
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"", "a", "b"}, segments("/a//b/", '/'))
	assert.Equal(t, []string{""}, segments("/", '/'))
	assert.Empty(t, segments("", '/'))
}
