// Package salt generates random character strings ("salts") of a configurable length
// from a literal character set or a selection of named character categories.
// In strict mode no character is used twice.
//
// The randomness source is math/rand/v2 and is NOT cryptographically secure.
// Do not use the output where unpredictability matters, e.g. for passwords or tokens.
package salt
