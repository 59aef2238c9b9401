// Package pattern compiles the user's search expression into a matcher.
//
// Matching is delegated to the standard regexp package (RE2 syntax). Case
// insensitivity is expressed with the (?i) flag group so that anchors,
// character classes and repetition behave exactly as in the case-sensitive
// expression.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when the expression is not a valid regular expression.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a compiled matcher. It is immutable and safe for concurrent use.
type Pattern struct {
	raw           string
	caseSensitive bool
	re            *regexp.Regexp
}

// Compile builds a Pattern from raw. Unless caseSensitive is set, the
// expression ignores ASCII and Unicode case differences.
func Compile(raw string, caseSensitive bool) (*Pattern, error) {
	expr := raw
	if !caseSensitive {
		expr = "(?i)" + raw
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, raw, err)
	}

	return &Pattern{
		raw:           raw,
		caseSensitive: caseSensitive,
		re:            re,
	}, nil
}

// MustCompile is like Compile but panics on an invalid expression.
func MustCompile(raw string, caseSensitive bool) *Pattern {
	p, err := Compile(raw, caseSensitive)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether text contains a match.
func (p *Pattern) MatchString(text string) bool {
	return p.re.MatchString(text)
}

// Find returns the byte offsets of the leftmost match in text.
func (p *Pattern) Find(text string) (start, end int, ok bool) {
	loc := p.re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// CaseSensitive reports whether the pattern distinguishes case.
func (p *Pattern) CaseSensitive() bool {
	return p.caseSensitive
}

// String returns the expression as the user wrote it.
func (p *Pattern) String() string {
	return p.raw
}
