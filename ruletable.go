package pactcore

import (
	"github.com/sourcegraph/log"

	"github.com/contract-kit/pactcore/jsonpath"
)

// ruleEntry pairs a compiled selector with the matcher it decoded to.
type ruleEntry struct {
	path    *jsonpath.PathMatcher
	matcher ValueMatcher
}

// RuleTable is the ordered collection of (PathMatcher, ValueMatcher) pairs
// compiled from one contract's matchingRules. It is immutable after
// construction and freely shareable within one comparison.
type RuleTable struct {
	entries []ruleEntry
}

// NewRuleTable compiles rules (selector -> rule descriptor, the decoded
// matchingRules subtree) into a RuleTable. Per spec.md §7, a malformed
// selector or matcher is fatal only to that one rule's compilation: it is
// dropped (with a logged warning) rather than aborting the whole table, so
// one bad contract entry doesn't block comparison of everything else.
// logger also receives a note for any descriptor that falls back to
// Equality.
func NewRuleTable(rules map[string]RuleDescriptor, logger log.Logger) *RuleTable {
	rt := &RuleTable{entries: make([]ruleEntry, 0, len(rules))}
	for selector, desc := range rules {
		pm, err := jsonpath.Compile(selector)
		if err != nil {
			logger.Warn("dropping rule with malformed selector",
				log.String("selector", selector), log.Error(err))
			continue
		}
		vm, err := DecodeRuleDescriptor(desc, logger)
		if err != nil {
			logger.Warn("dropping rule with malformed matcher",
				log.String("selector", selector), log.Error(err))
			continue
		}
		rt.entries = append(rt.entries, ruleEntry{path: pm, matcher: vm})
	}
	return rt
}

// Best returns the value-matcher of the entry with the maximum nonzero
// weight at path, or (nil, false) if no entry covers path.
func (rt *RuleTable) Best(path Path) (ValueMatcher, bool) {
	if rt == nil {
		return nil, false
	}
	var best ValueMatcher
	bestWeight := 0
	p := path.String()
	for _, e := range rt.entries {
		if w := e.path.Weight(p); w > bestWeight {
			bestWeight = w
			best = e.matcher
		}
	}
	return best, bestWeight > 0
}
