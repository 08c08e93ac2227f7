package pactcore

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	ansiGreen = "\x1b[1;32m"
	ansiRed   = "\x1b[1;31m"
	ansiReset = "\x1b[0;m"
)

// renderJSON serializes v as sorted-key, four-space-indented JSON with a
// trailing newline, matching spec.md §4.7. encoding/json already sorts
// map[string]any keys when marshaling, which is what ToAny produces for
// every object node.
func renderJSON(v Value) (string, error) {
	b, err := json.MarshalIndent(v.ToAny(), "", "    ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// RenderDiff produces the colorized unified diff lines between actual and
// expected's rendered JSON, per spec.md §4.7. Returns nil when the two
// renders are identical.
func RenderDiff(actual, expected Value) ([]string, error) {
	actualJSON, err := renderJSON(actual)
	if err != nil {
		return nil, err
	}
	expectedJSON, err := renderJSON(expected)
	if err != nil {
		return nil, err
	}
	if actualJSON == expectedJSON {
		return nil, nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(actualJSON),
		B:        difflib.SplitLines(expectedJSON),
		FromFile: "actual",
		ToFile:   "expected",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, err
	}

	return colorizeLines(text), nil
}

// colorizeLines wraps single "+ " lines in green and single "- " lines in
// red SGR escapes, leaving "+++"/"---"/"@@" headers untouched.
func colorizeLines(text string) []string {
	var lines []string
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "@@"):
			lines = append(lines, line)
		case strings.HasPrefix(line, "+"):
			lines = append(lines, ansiGreen+line+ansiReset)
		case strings.HasPrefix(line, "-"):
			lines = append(lines, ansiRed+line+ansiReset)
		default:
			lines = append(lines, line)
		}
	}
	return lines
}

// emitLines concatenates a slice of rendered diff lines into one string.
// It is unexported; the CLI prints the lines RenderDiff returns one by one.
func emitLines(lines []string) string {
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
	}
	return b.String()
}
