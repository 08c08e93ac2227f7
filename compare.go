package pactcore

import "github.com/sourcegraph/log"

// requestKeys and responseKeys give the fixed key order spec.md §6
// requires: method/path/query/headers/body for requests, status/headers/body
// for responses. Only headers ignores extra keys on requests; headers and
// body both do on responses.
var (
	requestKeys        = []string{"method", "path", "query", "headers", "body"}
	requestIgnoreExtra = map[string]bool{"headers": true}

	responseKeys        = []string{"status", "headers", "body"}
	responseIgnoreExtra = map[string]bool{"headers": true, "body": true}
)

// CompareRequests compares an actual request against an expected request
// (contract) document, returning unified-diff lines — empty when actual
// satisfies expected. logger receives diagnostic notes from rule
// compilation and decoding; pass log.NoOp() if none are wanted.
func CompareRequests(actual, expected Value, logger log.Logger) ([]string, error) {
	return compareDocument(actual, expected, requestKeys, requestIgnoreExtra, logger)
}

// CompareResponses compares an actual response against an expected response
// (contract) document. Same contract as CompareRequests.
func CompareResponses(actual, expected Value, logger log.Logger) ([]string, error) {
	return compareDocument(actual, expected, responseKeys, responseIgnoreExtra, logger)
}

func compareDocument(actual, expected Value, keys []string, ignoreExtra map[string]bool, logger log.Logger) ([]string, error) {
	sanitized := make([]string, len(keys))
	copy(sanitized, keys)
	Normalize(&actual, &expected, sanitized)

	rules := extractMatchingRules(&expected)
	rt := NewRuleTable(rules, logger)

	actualObj, _ := actual.AsObject()
	if actualObj == nil {
		actualObj = map[string]Value{}
	}
	expectedObj, _ := expected.AsObject()
	if expectedObj == nil {
		expectedObj = map[string]Value{}
	}

	tree := &DiffTree{Kind: DiffObject, Object: map[string]*DiffTree{}}

	for _, key := range keys {
		ev, haveEv := expectedObj[key]
		av, haveAv := actualObj[key]
		path := RootPath().Child(key)

		switch {
		case haveEv && haveAv:
			tree.Object[key] = Compare(av, ev, path, rt, ignoreExtra[key])
		case haveEv && !haveAv:
			tree.Object[key] = leafMismatch(Mismatch{Kind: KeyNotFound, Path: path, Expected: ev})
		case !haveEv && haveAv:
			// Keys the contract doesn't declare are never walked; only
			// sanitized keys are considered, and the normalizer already
			// pruned actual-only sanitized keys the contract omits.
			continue
		default:
			continue
		}
	}

	actualRender, expectedRender, _ := Rebuild(tree)
	return RenderDiff(actualRender, expectedRender)
}

// extractMatchingRules removes the matchingRules subtree from expected (per
// the Lifecycle note in spec.md §3: the rule table is derived from it and
// it is not itself a key to walk) and decodes it into rule descriptors.
func extractMatchingRules(expected *Value) map[string]RuleDescriptor {
	if !expected.IsObject() {
		return nil
	}
	mrVal, ok := expected.Get("matchingRules")
	if !ok {
		return nil
	}
	expected.Delete("matchingRules")

	obj, ok := mrVal.AsObject()
	if !ok {
		return nil
	}
	rules := make(map[string]RuleDescriptor, len(obj))
	for selector, ruleVal := range obj {
		rules[selector] = decodeRuleDescriptorValue(ruleVal)
	}
	return rules
}

func decodeRuleDescriptorValue(v Value) RuleDescriptor {
	var d RuleDescriptor
	if !v.IsObject() {
		return d
	}
	if mv, ok := v.Get("match"); ok {
		if s, ok := mv.AsString(); ok {
			d.Match = s
		}
	}
	if rv, ok := v.Get("regex"); ok {
		if s, ok := rv.AsString(); ok {
			d.Regex = s
		}
	}
	if mv, ok := v.Get("min"); ok {
		if n, ok := mv.AsNumber(); ok {
			m := int(n)
			d.Min = &m
		}
	}
	if mv, ok := v.Get("max"); ok {
		if n, ok := mv.AsNumber(); ok {
			m := int(n)
			d.Max = &m
		}
	}
	return d
}
