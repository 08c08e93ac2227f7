// Package consumer provides a fluent builder for contract interactions, the
// consumer side of a contract-testing session.
package consumer

import (
	"github.com/rs/xid"

	"github.com/contract-kit/pactcore"
)

// ProviderState names a state the provider must be in before an interaction
// runs, with optional parameters it needs to set that state up. A single
// interaction may require more than one.
type ProviderState struct {
	Name   string
	Params map[string]any
}

// Request is the expected-request half of an Interaction.
type Request struct {
	Method  string
	Path    string
	Query   string
	Headers map[string]string
	Body    any

	matchingRules map[string]pactcore.RuleDescriptor
}

// Response is the expected-response half of an Interaction.
type Response struct {
	Status  int
	Headers map[string]string
	Body    any

	matchingRules map[string]pactcore.RuleDescriptor
}

// Interaction is one recorded consumer expectation: an optional list of
// provider states, a human description, and the request/response pair.
type Interaction struct {
	ID             string
	ProviderStates []ProviderState
	Description    string
	Request        Request
	Response       Response
}

// RequestOption customizes a Request inside WithRequest.
type RequestOption func(*Request)

// ResponseOption customizes a Response inside WillRespondWith.
type ResponseOption func(*Response)

// Builder accumulates one Interaction through chained calls, mirroring the
// teacher's options-struct configuration style but exposed as a fluent API
// since callers build one interaction at a time rather than one shared
// options value.
type Builder struct {
	interaction Interaction
}

// NewBuilder starts a new interaction builder, description required per
// spec.md §6 (every interaction must be able to say what it represents).
func NewBuilder(description string) *Builder {
	return &Builder{interaction: Interaction{
		ID:          xid.New().String(),
		Description: description,
	}}
}

// Given records a provider state this interaction requires, with optional
// named parameters. May be called more than once: a single interaction may
// depend on several states being true at once.
func (b *Builder) Given(state string, params map[string]any) *Builder {
	b.interaction.ProviderStates = append(b.interaction.ProviderStates, ProviderState{
		Name:   state,
		Params: params,
	})
	return b
}

// UponReceiving overrides the description given to NewBuilder.
func (b *Builder) UponReceiving(description string) *Builder {
	b.interaction.Description = description
	return b
}

// WithRequest sets the expected request.
func (b *Builder) WithRequest(method, path string, opts ...RequestOption) *Builder {
	req := Request{Method: method, Path: path}
	for _, opt := range opts {
		opt(&req)
	}
	b.interaction.Request = req
	return b
}

// WillRespondWith sets the expected response.
func (b *Builder) WillRespondWith(status int, opts ...ResponseOption) *Builder {
	resp := Response{Status: status}
	for _, opt := range opts {
		opt(&resp)
	}
	b.interaction.Response = resp
	return b
}

// Interaction returns the built interaction. The Builder may be discarded
// after this call.
func (b *Builder) Interaction() Interaction {
	return b.interaction
}

// WithHeader adds one expected request header.
func WithHeader(name, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		r.Headers[name] = value
	}
}

// WithQuery sets the expected raw (URL-encoded) query string.
func WithQuery(query string) RequestOption {
	return func(r *Request) { r.Query = query }
}

// WithBody sets the expected request body. ToValue converts it with
// pactcore.FromAny, which accepts the shapes encoding/json decodes to
// (map[string]any, []any, string, float64, bool, nil) plus int; a body of any
// other Go type, such as a struct or a map[string]string, renders as null.
func WithBody(body any) RequestOption {
	return func(r *Request) { r.Body = body }
}

// WithMatcher attaches a matching rule to the request at selector, the
// JSONPath string a rule table entry is keyed on.
func WithMatcher(selector string, rule pactcore.RuleDescriptor) RequestOption {
	return func(r *Request) {
		if r.matchingRules == nil {
			r.matchingRules = map[string]pactcore.RuleDescriptor{}
		}
		r.matchingRules[selector] = rule
	}
}

// ResponseHeader adds one expected response header.
func ResponseHeader(name, value string) ResponseOption {
	return func(r *Response) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		r.Headers[name] = value
	}
}

// ResponseBody sets the expected response body.
func ResponseBody(body any) ResponseOption {
	return func(r *Response) { r.Body = body }
}

// ResponseMatcher attaches a matching rule to the response at selector.
func ResponseMatcher(selector string, rule pactcore.RuleDescriptor) ResponseOption {
	return func(r *Response) {
		if r.matchingRules == nil {
			r.matchingRules = map[string]pactcore.RuleDescriptor{}
		}
		r.matchingRules[selector] = rule
	}
}
