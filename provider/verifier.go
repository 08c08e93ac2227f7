// Package provider replays a pact document's interactions against a live
// service and reports any that disagree with the contract.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sourcegraph/log"

	"github.com/contract-kit/pactcore"
	"github.com/contract-kit/pactcore/mockserver"
	"github.com/contract-kit/pactcore/pactdoc"
)

// StateHandler sets up and tears down one named provider state. Teardown
// always runs once Setup has been called, regardless of what happens in
// between — a scoped acquire/release pair, not a best-effort cleanup.
type StateHandler interface {
	Setup(ctx context.Context, params map[string]any) error
	Teardown(ctx context.Context, params map[string]any) error
}

// VerificationFailure records one interaction that did not match the
// contract, or that could not be verified at all (state setup failed, the
// replay request errored).
type VerificationFailure struct {
	Description string
	Diff        []string
	Err         error
}

// Verifier replays every interaction in a Document against Client, running
// each interaction's declared provider states around the replay.
type Verifier struct {
	Client        mockserver.Client
	StateHandlers map[string]StateHandler
	Logger        log.Logger
}

// Verify walks doc.Interactions in order, processing each with full
// setup/replay/compare/teardown regardless of earlier failures, and returns
// every failure found (nil if the provider satisfies every interaction).
//
// Grounded on the teacher's batch-processing pattern of iterating a
// collection and aggregating per-item errors rather than failing fast.
func (v *Verifier) Verify(ctx context.Context, doc *pactdoc.Document) []VerificationFailure {
	var failures []VerificationFailure
	for _, interaction := range doc.Interactions {
		if f := v.verifyOne(ctx, interaction); f != nil {
			failures = append(failures, *f)
		}
	}
	return failures
}

func (v *Verifier) verifyOne(ctx context.Context, interaction pactcore.Value) *VerificationFailure {
	description := fieldString(interaction, "description")
	v.Logger.Info("verifying interaction", log.String("description", description))

	states := providerStates(interaction)
	var entered []providerState
	defer func() {
		for _, st := range entered {
			_ = v.StateHandlers[st.name].Teardown(ctx, st.params)
		}
	}()
	for _, st := range states {
		handler, ok := v.StateHandlers[st.name]
		if !ok {
			return &VerificationFailure{Description: description, Err: errUnknownState(st.name)}
		}
		entered = append(entered, st)
		if err := handler.Setup(ctx, st.params); err != nil {
			return &VerificationFailure{Description: description, Err: err}
		}
	}

	reqVal, _ := interaction.Get("request")
	expectedResp, _ := interaction.Get("response")

	method := fieldString(reqVal, "method")
	path := fieldString(reqVal, "path")
	headers := requestHeaders(reqVal)
	bodyBytes := requestBodyBytes(reqVal)

	actualVal, status, respHeaders, err := v.replay(ctx, method, path, headers, bodyBytes)
	if err != nil {
		return &VerificationFailure{Description: description, Err: err}
	}

	actualResp := buildActualResponse(status, respHeaders, actualVal)
	diff, err := pactcore.CompareResponses(actualResp, expectedResp, v.Logger)
	if err != nil {
		return &VerificationFailure{Description: description, Err: err}
	}
	if len(diff) > 0 {
		return &VerificationFailure{Description: description, Diff: diff}
	}
	return nil
}

func (v *Verifier) replay(ctx context.Context, method, path string, headers map[string]string, body []byte) (pactcore.Value, int, map[string][]string, error) {
	switch method {
	case http.MethodPost:
		return v.Client.Post(ctx, path, headers, body)
	case http.MethodPut:
		return v.Client.Put(ctx, path, headers, body)
	case http.MethodDelete:
		return v.Client.Delete(ctx, path, headers)
	default:
		return v.Client.Get(ctx, path, headers)
	}
}

func buildActualResponse(status int, headers map[string][]string, body pactcore.Value) pactcore.Value {
	headerObj := make(map[string]pactcore.Value, len(headers))
	for name, vs := range headers {
		if len(vs) > 0 {
			headerObj[name] = pactcore.String(vs[0])
		}
	}
	return pactcore.Object(map[string]pactcore.Value{
		"status":  pactcore.Number(float64(status)),
		"headers": pactcore.Object(headerObj),
		"body":    body,
	})
}

type providerState struct {
	name   string
	params map[string]any
}

func providerStates(interaction pactcore.Value) []providerState {
	v, ok := interaction.Get("providerStates")
	if !ok {
		return nil
	}
	arr, ok := v.AsArray()
	if !ok {
		return nil
	}
	out := make([]providerState, 0, len(arr))
	for _, sv := range arr {
		name := fieldString(sv, "name")
		var params map[string]any
		if pv, ok := sv.Get("params"); ok {
			if m, ok := pv.ToAny().(map[string]any); ok {
				params = m
			}
		}
		out = append(out, providerState{name: name, params: params})
	}
	return out
}

func fieldString(v pactcore.Value, key string) string {
	fv, ok := v.Get(key)
	if !ok {
		return ""
	}
	s, _ := fv.AsString()
	return s
}

func requestHeaders(req pactcore.Value) map[string]string {
	hv, ok := req.Get("headers")
	if !ok {
		return nil
	}
	obj, ok := hv.AsObject()
	if !ok {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		s, _ := v.AsString()
		out[k] = s
	}
	return out
}

func requestBodyBytes(req pactcore.Value) []byte {
	bv, ok := req.Get("body")
	if !ok || bv.IsNull() {
		return nil
	}
	b, err := json.Marshal(bv.ToAny())
	if err != nil {
		return nil
	}
	return b
}

func errUnknownState(name string) error {
	return fmt.Errorf("no state handler registered for provider state %q", name)
}
