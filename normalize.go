package pactcore

import (
	"net/url"
	"strings"
)

// Normalize canonicalizes actual and expected in place before comparison,
// per spec.md §4.4. sanitizedKeys lists the top-level keys (e.g. headers,
// query, body, status) for which a key present in actual but absent from
// expected is pruned from actual rather than reported as an extra key.
//
// Each transform is best-effort: a panic-free failure (e.g. an
// unparseable query string) leaves the field unchanged, so the comparator
// later treats it as-is — which usually surfaces as a Difference.
func Normalize(actual, expected *Value, sanitizedKeys []string) {
	for _, key := range sanitizedKeys {
		if expected.IsObject() {
			if _, ok := expected.Get(key); !ok {
				actual.Delete(key)
			}
		}
	}

	for _, t := range []*Value{actual, expected} {
		normalizeMethod(t)
		normalizeHeaders(t)
		normalizeMatchingRuleHeaderKeys(t)
		normalizeQuery(t)
	}
}

func normalizeMethod(t *Value) {
	if !t.IsObject() {
		return
	}
	v, ok := t.Get("method")
	if !ok {
		return
	}
	s, ok := v.AsString()
	if !ok {
		return
	}
	t.Set("method", String(strings.ToLower(s)))
}

func normalizeHeaders(t *Value) {
	if !t.IsObject() {
		return
	}
	hv, ok := t.Get("headers")
	if !ok || !hv.IsObject() {
		return
	}
	obj, _ := hv.AsObject()
	folded := make(map[string]Value, len(obj))
	for name, val := range obj {
		folded[strings.ToLower(name)] = foldHeaderValue(val)
	}
	t.Set("headers", Object(folded))
}

// foldHeaderValue splits a header value on ",", trims surrounding spaces of
// each part, and rejoins with ",". Non-string header values pass through
// unchanged (best-effort, per §4.4).
func foldHeaderValue(v Value) Value {
	s, ok := v.AsString()
	if !ok {
		return v
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return String(strings.Join(parts, ","))
}

// normalizeMatchingRuleHeaderKeys lower-cases any matchingRules selector
// that starts with "$.headers", so header rules survive header-name
// folding.
func normalizeMatchingRuleHeaderKeys(t *Value) {
	if !t.IsObject() {
		return
	}
	mr, ok := t.Get("matchingRules")
	if !ok || !mr.IsObject() {
		return
	}
	obj, _ := mr.AsObject()
	folded := make(map[string]Value, len(obj))
	for selector, rule := range obj {
		if strings.HasPrefix(selector, "$.headers") {
			folded[strings.ToLower(selector)] = rule
		} else {
			folded[selector] = rule
		}
	}
	t.Set("matchingRules", Object(folded))
}

// normalizeQuery parses a URL-encoded query string into a mapping
// name -> list of values, preserving empty values.
func normalizeQuery(t *Value) {
	if !t.IsObject() {
		return
	}
	qv, ok := t.Get("query")
	if !ok {
		return
	}
	s, ok := qv.AsString()
	if !ok {
		return
	}
	values, err := url.ParseQuery(s)
	if err != nil {
		return
	}
	obj := make(map[string]Value, len(values))
	for name, vs := range values {
		items := make([]Value, len(vs))
		for i, v := range vs {
			items[i] = String(v)
		}
		obj[name] = Array(items)
	}
	t.Set("query", Object(obj))
}
