package pactcore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDiffIdenticalReturnsNil(t *testing.T) {
	v := Object(map[string]Value{"a": Number(1)})
	diff, err := RenderDiff(v, v)
	require.NoError(t, err)
	assert.Nil(t, diff)
}

func TestRenderDiffHighlightsChanges(t *testing.T) {
	actual := Object(map[string]Value{"a": Number(1)})
	expected := Object(map[string]Value{"a": Number(2)})

	diff, err := RenderDiff(actual, expected)
	require.NoError(t, err)
	require.NotEmpty(t, diff)

	joined := strings.Join(diff, "")
	assert.Contains(t, joined, ansiRed)
	assert.Contains(t, joined, ansiGreen)
}

func TestRenderJSONSortsKeys(t *testing.T) {
	v := Object(map[string]Value{"z": Number(1), "a": Number(2)})
	s, err := renderJSON(v)
	require.NoError(t, err)
	assert.Less(t, strings.Index(s, `"a"`), strings.Index(s, `"z"`))
}
