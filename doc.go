// Package pactcore implements the verification core of a consumer-driven
// contract testing library: it decides whether an observed HTTP request or
// response satisfies a contract's expected request or response, modulo a set
// of JSONPath-keyed matching rules, and produces a human-readable structural
// diff when it does not.
//
// The core does not perform HTTP I/O, does not persist contract documents,
// and does not implement a general JSONPath evaluator. Those concerns live
// in the sibling packages consumer, mockserver, pactdoc, and provider.
package pactcore
