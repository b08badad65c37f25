package salt_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/toolbox/internal/salt"
)

// countingSource wraps a seeded source and counts draws.
type countingSource struct {
	r     *rand.Rand
	draws int
}

func newCountingSource() *countingSource {
	return &countingSource{r: rand.New(rand.NewPCG(1, 2))} //nolint:gosec
}

func (s *countingSource) IntN(n int) int {
	s.draws++
	return s.r.IntN(n)
}

// fixedSource returns the given indexes in order and repeats the last one.
type fixedSource struct {
	idx []int
	pos int
}

func (s *fixedSource) IntN(n int) int {
	i := s.idx[min(s.pos, len(s.idx)-1)]
	s.pos++

	return i % n
}

func assertFromPool(t *testing.T, got, pool string) {
	t.Helper()

	for _, r := range got {
		assert.Truef(t, strings.ContainsRune(pool, r), "character %q not in pool %q", r, pool)
	}
}

func assertUnique(t *testing.T, got string) {
	t.Helper()

	seen := map[rune]bool{}
	for _, r := range got {
		assert.Falsef(t, seen[r], "character %q repeated in %q", r, got)
		seen[r] = true
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		strict  bool
		charset salt.Charset
	}{
		{"all categories", 32, false, salt.All()},
		{"all categories strict", 64, true, salt.All()},
		{"literal", 20, false, salt.Chars("abc")},
		{"literal strict full pool", 3, true, salt.Chars("abc")},
		{"lower num", 5, false, salt.Categories(salt.Lower, salt.Num)},
		{"special extra strict", 10, true, salt.Categories(salt.Special, salt.Extra)},
		{"multi byte literal strict", 3, true, salt.Chars("äöü")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := salt.Generate(tc.length, tc.strict, tc.charset)
			require.NoError(t, err)

			assert.Equal(t, tc.length, utf8.RuneCountInString(got))
			assertFromPool(t, got, tc.charset.Pool())

			if tc.strict {
				assertUnique(t, got)
			}
		})
	}
}

func TestGenerate_ZeroLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		strict  bool
		charset salt.Charset
	}{
		{"zero non strict", 0, false, salt.All()},
		{"zero strict empty literal", 0, true, salt.Chars("")},
		{"zero empty categories", 0, false, salt.Categories()},
		{"negative", -5, true, salt.Chars("a")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := newCountingSource()
			gen := salt.NewGenerator(src)

			got, err := gen.Generate(tc.length, tc.strict, tc.charset)
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.Zero(t, src.draws)
		})
	}
}

func TestGenerate_NonStrictDrawCount(t *testing.T) {
	src := newCountingSource()
	gen := salt.NewGenerator(src)

	got, err := gen.Generate(100, false, salt.Chars("ab"))
	require.NoError(t, err)
	assert.Len(t, got, 100)
	assert.Equal(t, 100, src.draws)
}

func TestGenerate_StrictRedraws(t *testing.T) {
	// index 0 is drawn three times, only the first one is accepted
	gen := salt.NewGenerator(&fixedSource{idx: []int{0, 0, 0, 1, 1, 2}})

	got, err := gen.Generate(3, true, salt.Chars("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "xyz", got)
}

func TestGenerate_NonStrictAllowsRepeats(t *testing.T) {
	gen := salt.NewGenerator(&fixedSource{idx: []int{1}})

	got, err := gen.Generate(4, false, salt.Chars("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "yyyy", got)
}

func TestGenerate_ConfigurationError(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		strict  bool
		charset salt.Charset
		want    error
	}{
		{"strict pool too small", 10, true, salt.Chars("abc"), salt.ErrPoolTooSmall},
		{"strict duplicates do not count", 3, true, salt.Chars("aab"), salt.ErrPoolTooSmall},
		{"empty literal", 1, false, salt.Chars(""), salt.ErrEmptyPool},
		{"empty literal strict", 1, true, salt.Chars(""), salt.ErrEmptyPool},
		{"no categories", 4, false, salt.Categories(), salt.ErrEmptyPool},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := salt.Generate(tc.length, tc.strict, tc.charset)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tc.want)

			var cfgErr *salt.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.length, cfgErr.Length)
		})
	}
}

func TestGenerateRequest(t *testing.T) {
	gen := salt.NewGenerator(nil)

	got, err := gen.GenerateRequest(salt.Request{Length: 8, Strict: true, Charset: salt.Categories(salt.Num)})
	require.NoError(t, err)
	assert.Len(t, got, 8)
	assertFromPool(t, got, salt.NumChars)
	assertUnique(t, got)
}

func TestNew(t *testing.T) {
	got := salt.New()

	assert.Len(t, got, salt.StdLen)
	assertFromPool(t, got, salt.AllChars)
	assertUnique(t, got)
}

func TestGenerate_Concurrent(t *testing.T) {
	done := make(chan string)

	for range 8 {
		go func() {
			s, _ := salt.Generate(12, true, salt.All())
			done <- s
		}()
	}

	for range 8 {
		assert.Len(t, <-done, 12)
	}
}
