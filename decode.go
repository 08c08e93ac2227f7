package pactcore

import "github.com/sourcegraph/log"

// RuleDescriptor is the raw {match, regex, min, max} shape a matchingRules
// entry decodes from, per spec.md §4.2.
type RuleDescriptor struct {
	Match string
	Regex string
	Min   *int
	Max   *int
}

// DecodeRuleDescriptor decodes one descriptor into a ValueMatcher, following
// the precedence table of spec.md §4.2. An unrecognized descriptor falls
// back to Equality, with a logged note through logger (which may be nil,
// matching the teacher's pattern of an optional injected logger used only
// for diagnostics, never control flow).
func DecodeRuleDescriptor(d RuleDescriptor, logger log.Logger) (ValueMatcher, error) {
	switch {
	case d.Match == "regex":
		return NewRegex(d.Regex)
	case d.Match == "type" && (d.Min != nil || d.Max != nil):
		return NewMinMax(d.Min, d.Max)
	case d.Match == "type":
		return Type{}, nil
	case d.Min != nil || d.Max != nil:
		return NewMinMax(d.Min, d.Max)
	case d.Match == "":
		return Equality{}, nil
	default:
		if logger != nil {
			logger.Warn("unrecognized matcher descriptor, falling back to equality",
				log.String("match", d.Match))
		}
		return Equality{}, nil
	}
}
