package pactcore

import (
	"strconv"

	"github.com/google/go-cmp/cmp"
	"github.com/grafana/regexp"
	"github.com/pkg/errors"
)

// ValueMatcher is a value-level predicate: equality, regex, type, or
// min/max cardinality. Every variant exposes the same single operation.
type ValueMatcher interface {
	// Diff compares actual against expected at path, returning nil if they
	// satisfy the matcher or a Mismatch describing how they don't.
	Diff(path Path, actual, expected Value) *Mismatch
}

// Equality is the default matcher: actual and expected must be structurally
// equal.
type Equality struct{}

func (Equality) Diff(path Path, actual, expected Value) *Mismatch {
	if cmp.Equal(actual.ToAny(), expected.ToAny()) {
		return nil
	}
	return &Mismatch{Kind: Difference, Path: path, Actual: actual, Expected: expected}
}

// Regex matches actual (coerced to its string form) against pattern,
// anchored at the start only — "starts with" semantics per spec.md §4.2.
// Expected is ignored.
type Regex struct {
	Pattern string
	re      *regexp.Regexp
}

// NewRegex compiles pattern into a Regex matcher.
func NewRegex(pattern string) (Regex, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return Regex{}, errors.Wrapf(err, "matcher: compiling regex %q", pattern)
	}
	return Regex{Pattern: pattern, re: re}, nil
}

func (r Regex) Diff(path Path, actual, expected Value) *Mismatch {
	s := scalarString(actual)
	if r.re != nil && r.re.MatchString(s) {
		return nil
	}
	return &Mismatch{Kind: RegexNotMatched, Path: path, Actual: actual, Pattern: r.Pattern}
}

// scalarString renders any scalar Value (number, bool, string) as a string
// for regex matching, matching the source library's permissive coercion —
// contract test data commonly declares numbers where a string pattern is
// checked against their textual form.
func scalarString(v Value) string {
	switch v.Kind() {
	case KindString:
		s, _ := v.AsString()
		return s
	case KindNumber:
		n, _ := v.AsNumber()
		return formatNumber(n)
	case KindBool:
		b, _ := v.AsBool()
		if b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// Type matches when actual and expected share the same Kind.
type Type struct{}

func (Type) Diff(path Path, actual, expected Value) *Mismatch {
	if actual.Kind() == expected.Kind() {
		return nil
	}
	return &Mismatch{Kind: TypeNotMatched, Path: path, Actual: actual, Expected: expected}
}

// MinMax checks that a sequence actual has length within [Min, Max]. Either
// bound may be nil (unbounded on that side).
type MinMax struct {
	Min *int
	Max *int
}

// NewMinMax validates min <= max (when both set) at construction time, per
// the malformed-input plane (spec.md §7).
func NewMinMax(min, max *int) (MinMax, error) {
	if min != nil && max != nil && *min > *max {
		return MinMax{}, errors.Errorf("matcher: min %d is greater than max %d", *min, *max)
	}
	return MinMax{Min: min, Max: max}, nil
}

func (mm MinMax) Diff(path Path, actual, expected Value) *Mismatch {
	n := actual.Len()
	if mm.Min != nil && n < *mm.Min {
		return &Mismatch{Kind: NumberNotMatched, Path: path, Actual: actual, Expected: expected, Min: mm.Min, Max: mm.Max}
	}
	if mm.Max != nil && n > *mm.Max {
		return &Mismatch{Kind: NumberNotMatched, Path: path, Actual: actual, Expected: expected, Min: mm.Min, Max: mm.Max}
	}
	return nil
}
