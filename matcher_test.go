package pactcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualityDiff(t *testing.T) {
	m := Equality{}.Diff(RootPath(), Number(1), Number(1))
	assert.Nil(t, m)

	m = Equality{}.Diff(RootPath(), Number(1), Number(2))
	require.NotNil(t, m)
	assert.Equal(t, Difference, m.Kind)
}

func TestRegexDiffAnchorsAtStart(t *testing.T) {
	re, err := NewRegex(`\d+`)
	require.NoError(t, err)

	assert.Nil(t, re.Diff(RootPath(), String("123abc"), Null()))
	m := re.Diff(RootPath(), String("abc123"), Null())
	require.NotNil(t, m)
	assert.Equal(t, RegexNotMatched, m.Kind)
}

func TestRegexDiffCoercesScalars(t *testing.T) {
	re, err := NewRegex(`42`)
	require.NoError(t, err)
	assert.Nil(t, re.Diff(RootPath(), Number(42), Null()))
}

func TestTypeDiff(t *testing.T) {
	assert.Nil(t, Type{}.Diff(RootPath(), String("a"), String("b")))
	m := Type{}.Diff(RootPath(), String("a"), Number(1))
	require.NotNil(t, m)
	assert.Equal(t, TypeNotMatched, m.Kind)
}

func TestNewMinMaxRejectsInverted(t *testing.T) {
	min, max := 5, 2
	_, err := NewMinMax(&min, &max)
	assert.Error(t, err)
}

func TestMinMaxDiff(t *testing.T) {
	min, max := 1, 3
	mm, err := NewMinMax(&min, &max)
	require.NoError(t, err)

	arr := Array([]Value{Number(1), Number(2)})
	assert.Nil(t, mm.Diff(RootPath(), arr, Null()))

	tooShort := Array(nil)
	mShort := mm.Diff(RootPath(), tooShort, Null())
	require.NotNil(t, mShort)
	assert.Equal(t, NumberNotMatched, mShort.Kind)

	tooLong := Array([]Value{Number(1), Number(2), Number(3), Number(4)})
	mLong := mm.Diff(RootPath(), tooLong, Null())
	require.NotNil(t, mLong)
	assert.Equal(t, NumberNotMatched, mLong.Kind)
}
