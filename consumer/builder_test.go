package consumer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contract-kit/pactcore"
)

func TestBuilderProducesInteraction(t *testing.T) {
	i := NewBuilder("a widget exists").
		Given("widget 1 exists", nil).
		Given("user is authenticated", map[string]any{"role": "admin"}).
		WithRequest("GET", "/widgets/1", WithHeader("Accept", "application/json")).
		WillRespondWith(200, ResponseBody(map[string]any{"id": float64(1)})).
		Interaction()

	assert.Equal(t, "a widget exists", i.Description)
	require.Len(t, i.ProviderStates, 2)
	assert.Equal(t, "widget 1 exists", i.ProviderStates[0].Name)
	assert.Nil(t, i.ProviderStates[0].Params)
	assert.Equal(t, "admin", i.ProviderStates[1].Params["role"])
	assert.Equal(t, "GET", i.Request.Method)
	assert.Equal(t, "application/json", i.Request.Headers["Accept"])
	assert.Equal(t, 200, i.Response.Status)
	assert.NotEmpty(t, i.ID)
}

func TestUponReceivingOverridesDescription(t *testing.T) {
	i := NewBuilder("placeholder").
		UponReceiving("a request for a missing widget").
		WithRequest("GET", "/widgets/999").
		WillRespondWith(404).
		Interaction()

	assert.Equal(t, "a request for a missing widget", i.Description)
}

func TestToValueRendersRequestAndResponse(t *testing.T) {
	i := NewBuilder("desc").
		WithRequest("POST", "/widgets", WithBody(map[string]any{"name": "bob"}),
			WithMatcher("$.body.name", pactcore.RuleDescriptor{Match: "regex", Regex: "^b"})).
		WillRespondWith(201, ResponseMatcher("$.body.id", pactcore.RuleDescriptor{Match: "type"})).
		Interaction()

	v := i.ToValue()
	req, ok := v.Get("request")
	require.True(t, ok)
	method, _ := req.Get("method")
	s, _ := method.AsString()
	assert.Equal(t, "POST", s)

	mr, ok := req.Get("matchingRules")
	require.True(t, ok)
	_, ok = mr.Get("$.body.name")
	assert.True(t, ok)

	resp, ok := v.Get("response")
	require.True(t, ok)
	status, _ := resp.Get("status")
	n, _ := status.AsNumber()
	assert.Equal(t, float64(201), n)
}
