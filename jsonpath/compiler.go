// Package jsonpath compiles the restricted JSONPath selector DSL accepted
// from contract matching rules into a regex over concrete bracket-notation
// paths, plus an integer specificity weight used by the rule table to pick
// the most specific matching rule for a given path.
//
// This is not a general JSONPath evaluator: it only ever needs to decide
// whether one already-built concrete path is covered by one compiled
// selector, never to search a tree for matches itself.
package jsonpath

import (
	"strconv"
	"strings"

	"github.com/grafana/regexp"
	"github.com/pkg/errors"
)

// PathMatcher is a compiled JSONPath selector: a regex over bracket-notation
// concrete paths and the specificity weight computed at compile time.
type PathMatcher struct {
	selector string
	re       *regexp.Regexp
	weight   int
}

// Compile parses selector (which must start with "$") into a PathMatcher.
// It returns an error for a selector without the "$" prefix, an unterminated
// bracket, a character that starts neither a dot nor a bracket segment, and a
// bracket segment that is neither quoted, an integer, "*", nor empty.
func Compile(selector string) (*PathMatcher, error) {
	if !strings.HasPrefix(selector, "$") {
		return nil, errors.Errorf("jsonpath: selector %q must start with $", selector)
	}

	segs, err := scan("." + selector)
	if err != nil {
		return nil, errors.Wrapf(err, "jsonpath: compiling %q", selector)
	}

	var b strings.Builder
	b.WriteByte('^')
	weight := 1

	for i, s := range segs {
		last := i == len(segs)-1
		frag, w, err := s.compile(last)
		if err != nil {
			return nil, errors.Wrapf(err, "jsonpath: compiling %q", selector)
		}
		b.WriteString(frag)
		weight *= w
	}
	b.WriteByte('$')

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, errors.Wrapf(err, "jsonpath: compiling %q to regex %q", selector, b.String())
	}

	return &PathMatcher{selector: selector, re: re, weight: weight}, nil
}

// Matches reports whether the concrete path (bracket notation, e.g.
// ['$']['body']) is covered by this selector.
func (m *PathMatcher) Matches(path string) bool {
	return m.re.MatchString(path)
}

// Weight returns the compiled specificity weight if path matches, 0
// otherwise.
func (m *PathMatcher) Weight(path string) int {
	if !m.Matches(path) {
		return 0
	}
	return m.weight
}

func (m *PathMatcher) String() string { return m.selector }

// segment is one dot-form or bracket-form token scanned from a selector,
// with the leading "." prepended so the root "$" parses as an ordinary
// dot-form key.
type segment struct {
	dot  bool
	text string
}

// scan splits s into alternating dot-form and bracket-form tokens.
func scan(s string) ([]segment, error) {
	var segs []segment
	i, n := 0, len(s)
	for i < n {
		switch s[i] {
		case '.':
			i++
			start := i
			for i < n && s[i] != '.' && s[i] != '[' {
				i++
			}
			segs = append(segs, segment{dot: true, text: s[start:i]})
		case '[':
			i++
			start := i
			for i < n && s[i] != ']' {
				i++
			}
			if i >= n {
				return nil, errors.New("unterminated bracket segment")
			}
			segs = append(segs, segment{dot: false, text: s[start:i]})
			i++
		default:
			return nil, errors.Errorf("unexpected character %q", s[i])
		}
	}
	return segs, nil
}

// compile turns one segment into a regex fragment and its weight factor,
// per spec.md §4.1's per-segment table.
func (s segment) compile(last bool) (frag string, weightFactor int, err error) {
	if s.dot {
		switch {
		case s.text == "":
			// ".." — empty dot segment, matches any single key.
			return `\['[^']*'\]`, 1, nil
		case s.text == "*" && !last:
			return `\['.*'\]`, 1, nil
		case s.text == "*" && last:
			// trailing ".*" — descendant wildcard, matches any suffix.
			return `.*`, 1, nil
		default:
			return `\['` + regexp.QuoteMeta(s.text) + `'\]`, 2, nil
		}
	}

	switch {
	case s.text == "*" || s.text == "":
		return `\[[0-9]+\]`, 1, nil
	case isQuoted(s.text):
		key := s.text[1 : len(s.text)-1]
		return `\['` + regexp.QuoteMeta(key) + `'\]`, 2, nil
	case isInteger(s.text):
		return `\[` + s.text + `\]`, 2, nil
	default:
		return "", 0, errors.Errorf("bracket segment %q is neither quoted, an integer, nor a wildcard", s.text)
	}
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\''
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}
