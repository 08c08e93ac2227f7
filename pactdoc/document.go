// Package pactdoc loads, saves, and watches pact documents: the JSON
// contract files a consumer publishes and a provider later verifies
// against.
package pactdoc

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/contract-kit/pactcore"
)

// Participant names one side of a contract.
type Participant struct {
	Name string `json:"name"`
}

// Metadata carries the pact-specification version, the one field spec.md §6
// treats as essential; a library identifier is tolerated but never read.
type Metadata struct {
	PactSpecification struct {
		Version string `json:"version"`
	} `json:"pact-specification"`
}

// Document is a full pact contract: the participants, every recorded
// interaction, and specification metadata.
type Document struct {
	Provider     Participant      `json:"provider"`
	Consumer     Participant      `json:"consumer"`
	Interactions []pactcore.Value `json:"-"`
	Metadata     Metadata         `json:"metadata"`
}

// defaultSpecVersion is written by Save when Metadata is left zero-valued.
const defaultSpecVersion = "1.0.0"

// jsonDoc is Document's wire shape: interactions as raw JSON so pactcore.Value
// round-trips through encoding/json without a custom (Un)MarshalJSON method
// on Value itself.
// Its fields are declared in key order so that Save's top-level keys come out
// sorted like the nested ones.
type jsonDoc struct {
	Consumer     Participant       `json:"consumer"`
	Interactions []json.RawMessage `json:"interactions"`
	Metadata     Metadata          `json:"metadata"`
	Provider     Participant       `json:"provider"`
}

// Load reads and parses a pact document from path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading pact document %s", path)
	}
	var jd jsonDoc
	if err := json.Unmarshal(b, &jd); err != nil {
		return nil, errors.Wrapf(err, "parsing pact document %s", path)
	}

	doc := &Document{
		Provider: jd.Provider,
		Consumer: jd.Consumer,
		Metadata: jd.Metadata,
	}
	for _, raw := range jd.Interactions {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, errors.Wrapf(err, "parsing interaction in %s", path)
		}
		doc.Interactions = append(doc.Interactions, pactcore.FromAny(decoded))
	}
	return doc, nil
}

// Save writes doc to path as sorted-key, four-space-indented JSON, the same
// rendering convention the comparator's renderer uses.
func Save(doc *Document, path string) error {
	if doc.Metadata.PactSpecification.Version == "" {
		doc.Metadata.PactSpecification.Version = defaultSpecVersion
	}

	jd := jsonDoc{
		Provider: doc.Provider,
		Consumer: doc.Consumer,
		Metadata: doc.Metadata,
	}
	for _, i := range doc.Interactions {
		raw, err := json.MarshalIndent(i.ToAny(), "", "    ")
		if err != nil {
			return errors.Wrap(err, "marshaling interaction")
		}
		jd.Interactions = append(jd.Interactions, raw)
	}

	b, err := json.MarshalIndent(jd, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshaling pact document")
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
