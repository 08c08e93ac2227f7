package pactcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMethodLowercases(t *testing.T) {
	actual := Object(map[string]Value{"method": String("GET")})
	expected := Object(map[string]Value{"method": String("get")})
	Normalize(&actual, &expected, nil)

	m, _ := actual.Get("method")
	s, _ := m.AsString()
	assert.Equal(t, "get", s)
}

func TestNormalizeHeadersFoldsNameAndValue(t *testing.T) {
	actual := Object(map[string]Value{
		"headers": Object(map[string]Value{"Content-Type": String("a, b ,c")}),
	})
	expected := Object(map[string]Value{})
	Normalize(&actual, &expected, nil)

	h, _ := actual.Get("headers")
	obj, _ := h.AsObject()
	v, ok := obj["content-type"]
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "a,b,c", s)
}

func TestNormalizeQueryParsesURLEncoding(t *testing.T) {
	actual := Object(map[string]Value{"query": String("a=1&a=2&b=")})
	expected := Object(map[string]Value{})
	Normalize(&actual, &expected, nil)

	q, _ := actual.Get("query")
	obj, _ := q.AsObject()
	a, ok := obj["a"]
	require.True(t, ok)
	arr, _ := a.AsArray()
	require.Len(t, arr, 2)
}

func TestNormalizePrunesSanitizedKeyAbsentFromExpected(t *testing.T) {
	actual := Object(map[string]Value{"headers": Object(map[string]Value{"x": String("y")})})
	expected := Object(map[string]Value{})
	Normalize(&actual, &expected, []string{"headers"})

	_, ok := actual.Get("headers")
	assert.False(t, ok)
}

func TestNormalizeMatchingRuleHeaderKeysLowercased(t *testing.T) {
	actual := Object(map[string]Value{
		"matchingRules": Object(map[string]Value{
			"$.headers.Content-Type": Object(map[string]Value{"match": String("type")}),
		}),
	})
	expected := Object(map[string]Value{})
	Normalize(&actual, &expected, nil)

	mr, _ := actual.Get("matchingRules")
	obj, _ := mr.AsObject()
	_, ok := obj["$.headers.content-type"]
	assert.True(t, ok)
}
