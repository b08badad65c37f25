package salt

import (
	"strings"
)

// Category names a fixed group of characters.
type Category string

// Known categories.
const (
	Lower   Category = "lower"
	Upper   Category = "upper"
	Num     Category = "num"
	Special Category = "special"
	Extra   Category = "extra"

	// Alpha is the legacy shorthand for Lower and Upper. If set, Lower and Upper are ignored.
	Alpha Category = "alpha"
)

// Character pools of the categories.
const (
	LowerChars   = "abcdefghijklmnopqrstuvwxyz"
	UpperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	NumChars     = "0123456789"
	SpecialChars = "!@#$%^&*()-_=+.?"
	ExtraChars   = `{}[]<>:;/\|~`

	// AllChars is the pool used when no charset is given.
	AllChars = LowerChars + UpperChars + NumChars + SpecialChars + ExtraChars
)

// categoryOrder is the order in which selected categories are concatenated.
var categoryOrder = []struct { //nolint:gochecknoglobals
	cat   Category
	chars string
}{
	{Lower, LowerChars},
	{Upper, UpperChars},
	{Num, NumChars},
	{Special, SpecialChars},
	{Extra, ExtraChars},
}

// Charset describes where the characters of a salt come from.
// The zero value selects all categories.
type Charset struct {
	literal    bool
	chars      string
	categories map[Category]struct{}
}

// Chars returns a Charset using s verbatim, even if s is empty.
func Chars(s string) Charset {
	return Charset{literal: true, chars: s}
}

// Categories returns a Charset built from the given categories.
// Unknown categories are ignored. An empty selection yields an empty pool.
func Categories(cats ...Category) Charset {
	set := make(map[Category]struct{}, len(cats))
	for _, c := range cats {
		set[c] = struct{}{}
	}

	return Charset{categories: set}
}

// All returns the Charset containing every category.
func All() Charset {
	return Charset{}
}

// IsAll reports whether the charset falls back to all categories.
func (c Charset) IsAll() bool {
	return !c.literal && c.categories == nil
}

// Pool resolves the charset into the string characters are drawn from.
// Categories are concatenated in the order lower, upper, num, special, extra.
// Repeated characters are kept and therefore weigh more when drawing.
func (c Charset) Pool() string {
	if c.literal {
		return c.chars
	}

	if c.categories == nil {
		return AllChars
	}

	var b strings.Builder

	_, alpha := c.categories[Alpha]

	for _, entry := range categoryOrder {
		if alpha && (entry.cat == Lower || entry.cat == Upper) {
			if entry.cat == Lower {
				b.WriteString(LowerChars + UpperChars)
			}

			continue
		}

		if _, ok := c.categories[entry.cat]; ok {
			b.WriteString(entry.chars)
		}
	}

	return b.String()
}

// String returns a readable description, used in logs.
func (c Charset) String() string {
	switch {
	case c.literal:
		return "chars:" + c.chars
	case c.categories == nil:
		return "all"
	}

	names := make([]string, 0, len(c.categories))

	if _, ok := c.categories[Alpha]; ok {
		names = append(names, string(Alpha))
	}

	for _, entry := range categoryOrder {
		if _, ok := c.categories[entry.cat]; ok {
			names = append(names, string(entry.cat))
		}
	}

	return "categories:" + strings.Join(names, ",")
}

// ParseCategories parses category names like "lower", "num" into categories.
// Names are trimmed and matched case-insensitively, empty names are skipped.
func ParseCategories(names ...string) ([]Category, error) {
	cats := make([]Category, 0, len(names))

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		cat := Category(name)

		switch cat {
		case Lower, Upper, Num, Special, Extra, Alpha:
			cats = append(cats, cat)
		default:
			return nil, &categoryError{name: name}
		}
	}

	return cats, nil
}

type categoryError struct {
	name string
}

func (e *categoryError) Error() string {
	return ErrUnknownCategory.Error() + ": " + e.name
}

func (e *categoryError) Unwrap() error {
	return ErrUnknownCategory
}
