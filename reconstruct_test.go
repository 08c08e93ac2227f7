package pactcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildPassthroughOnMatch(t *testing.T) {
	tree := leafOK(Number(1))
	actual, expected, errs := Rebuild(tree)
	assert.Empty(t, errs)
	assert.Equal(t, Number(1), actual)
	assert.Equal(t, Number(1), expected)
}

func TestRebuildKeyNotFoundRendersSentinel(t *testing.T) {
	tree := leafMismatch(Mismatch{Kind: KeyNotFound, Path: RootPath().Child("name"), Expected: String("bob")})
	actual, expected, errs := Rebuild(tree)
	require.Len(t, errs, 1)
	assert.Equal(t, KeyNotFound, errs[0].Kind)

	s, ok := actual.AsString()
	require.True(t, ok)
	assert.Equal(t, "KeyNotFound", s)
	assert.Equal(t, String("bob"), expected)
}

func TestRebuildUnexpectedKeyRendersSentinel(t *testing.T) {
	tree := leafMismatch(Mismatch{Kind: UnexpectedKey, Path: RootPath().Child("extra"), Actual: Bool(true)})
	actual, expected, _ := Rebuild(tree)
	assert.Equal(t, Bool(true), actual)
	s, _ := expected.AsString()
	assert.Equal(t, "UnexpectedKey", s)
}

func TestRebuildObjectRecurses(t *testing.T) {
	tree := &DiffTree{Kind: DiffObject, Object: map[string]*DiffTree{
		"a": leafOK(Number(1)),
		"b": leafMismatch(Mismatch{Kind: KeyNotFound, Path: RootPath().Child("b"), Expected: Number(2)}),
	}}
	actual, expected, errs := Rebuild(tree)
	require.Len(t, errs, 1)

	aObj, _ := actual.AsObject()
	assert.Equal(t, Number(1), aObj["a"])
	s, _ := aObj["b"].AsString()
	assert.Equal(t, "KeyNotFound", s)

	eObj, _ := expected.AsObject()
	assert.Equal(t, Number(2), eObj["b"])
}

func TestRebuildRegexNotMatchedRendersPattern(t *testing.T) {
	tree := leafMismatch(Mismatch{Kind: RegexNotMatched, Path: RootPath(), Actual: String("xyz"), Pattern: "^abc"})
	actual, expected, _ := Rebuild(tree)
	assert.Equal(t, String("xyz"), actual)
	s, _ := expected.AsString()
	assert.Equal(t, "RegexNotMatched(^abc)", s)
}
