package salt

import (
	"math/rand/v2"
	"strings"
)

const (
	// StdLen is the length of a salt created by New.
	StdLen = 16
)

// Source picks a pseudo-random index in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource uses the top level math/rand/v2 functions, which are safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // not used in a security context
}

// Request bundles the parameters of a single generation.
type Request struct {
	Length  int
	Strict  bool
	Charset Charset
}

// Generator draws salts from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator reading from src.
// A nil src uses the shared math/rand/v2 source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}

	return &Generator{src: src}
}

// defaultGenerator backs the package level functions.
var defaultGenerator = NewGenerator(nil) //nolint:gochecknoglobals

// New returns a strict salt of StdLen characters drawn from all categories.
func New() string {
	s, err := defaultGenerator.Generate(StdLen, true, All())
	if err != nil {
		// AllChars holds far more than StdLen distinct characters.
		panic("salt: " + err.Error())
	}

	return s
}

// Generate returns a salt using the shared source. See Generator.Generate.
func Generate(length int, strict bool, charset Charset) (string, error) {
	return defaultGenerator.Generate(length, strict, charset)
}

// GenerateRequest is Generate with the parameters taken from r.
func (g *Generator) GenerateRequest(r Request) (string, error) {
	return g.Generate(r.Length, r.Strict, r.Charset)
}

// Generate returns a string of length characters drawn uniformly from the charset pool.
//
// A length of zero or less returns an empty string without drawing.
// If strict is set, every character occurs at most once and a pool with
// fewer distinct characters than length fails with a *ConfigurationError.
// An empty pool always fails with a *ConfigurationError.
func (g *Generator) Generate(length int, strict bool, charset Charset) (string, error) {
	if length <= 0 {
		return "", nil
	}

	pool := []rune(charset.Pool())
	if len(pool) == 0 {
		return "", &ConfigurationError{Err: ErrEmptyPool, Length: length}
	}

	if strict {
		if distinct := countDistinct(pool); distinct < length {
			return "", &ConfigurationError{Err: ErrPoolTooSmall, Length: length, PoolLen: distinct}
		}

		return g.drawUnique(pool, length), nil
	}

	return g.draw(pool, length), nil
}

func (g *Generator) draw(pool []rune, length int) string {
	var b strings.Builder

	b.Grow(length)

	for range length {
		b.WriteRune(pool[g.src.IntN(len(pool))])
	}

	return b.String()
}

// drawUnique redraws until length distinct characters were accepted.
// Callers make sure the pool has at least length distinct characters.
func (g *Generator) drawUnique(pool []rune, length int) string {
	var (
		b    strings.Builder
		used = make(map[rune]struct{}, length)
	)

	b.Grow(length)

	for len(used) < length {
		r := pool[g.src.IntN(len(pool))]
		if _, ok := used[r]; ok {
			continue
		}

		used[r] = struct{}{}

		b.WriteRune(r)
	}

	return b.String()
}

func countDistinct(pool []rune) int {
	seen := make(map[rune]struct{}, len(pool))
	for _, r := range pool {
		seen[r] = struct{}{}
	}

	return len(seen)
}
