package pactdoc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contract-kit/pactcore"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pact.json")

	doc := &Document{
		Provider: Participant{Name: "widget-service"},
		Consumer: Participant{Name: "widget-ui"},
		Interactions: []pactcore.Value{
			pactcore.Object(map[string]pactcore.Value{
				"description": pactcore.String("a widget exists"),
				"request": pactcore.Object(map[string]pactcore.Value{
					"method": pactcore.String("GET"),
					"path":   pactcore.String("/widgets/1"),
				}),
				"response": pactcore.Object(map[string]pactcore.Value{
					"status": pactcore.Number(200),
				}),
			}),
		},
	}

	require.NoError(t, Save(doc, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "widget-service", loaded.Provider.Name)
	assert.Equal(t, "widget-ui", loaded.Consumer.Name)
	assert.Equal(t, defaultSpecVersion, loaded.Metadata.PactSpecification.Version)
	require.Len(t, loaded.Interactions, 1)

	desc, ok := loaded.Interactions[0].Get("description")
	require.True(t, ok)
	s, _ := desc.AsString()
	assert.Equal(t, "a widget exists", s)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/pact.json")
	assert.Error(t, err)
}
