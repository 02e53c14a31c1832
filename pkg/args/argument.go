package args

import (
	"math"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	floatPrefix = regexp.MustCompile(`^[\t\n\v\f\r ]*[+-]?(?:Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[\t\n\v\f\r ]*[+-]?\d+`)
)

// Argument is one token extracted from a tag's argument payload.
type Argument struct {
	value string
}

// NewArgument wraps a raw token.
func NewArgument(value string) Argument {
	return Argument{value: value}
}

// Value returns the token exactly as extracted, quotes already stripped.
func (a Argument) Value() string {
	return a.value
}

// LowerValue returns the lower-cased token.
func (a Argument) LowerValue() string {
	// a Caser holds state, so one is built per call
	return cases.Lower(language.Und).String(a.value)
}

// AsNumber parses the longest leading float prefix of the token.
func (a Argument) AsNumber() (float64, bool) {
	match := floatPrefix.FindString(a.value)
	if match == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(trimLeadingSpace(match), 64)
	if err != nil && !math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// AsInt parses the leading base-10 integer prefix of the token.
func (a Argument) AsInt() (int, bool) {
	match := intPrefix.FindString(a.value)
	if match == "" {
		return 0, false
	}

	i, err := strconv.Atoi(trimLeadingSpace(match))
	if err != nil {
		return 0, false
	}

	return i, true
}

// IsTrue reports whether the token reads as a truthy flag. Tokens that are neither an
// explicit truthy nor an explicit falsy word are true when non-empty.
func (a Argument) IsTrue() bool {
	switch a.LowerValue() {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return a.value != ""
	}
}

func (a Argument) IsFalse() bool {
	return !a.IsTrue()
}

func (a Argument) String() string {
	return a.value
}

func trimLeadingSpace(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			continue
		}
		return s[i:]
	}
	return ""
}
