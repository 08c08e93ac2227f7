// Package mockserver provides the HTTP client a provider verifier uses to
// replay contract interactions against a real running service.
package mockserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sourcegraph/log"

	"github.com/contract-kit/pactcore"
)

// Client issues one HTTP request per call and decodes the JSON response body
// into a pactcore.Value, ready for CompareResponses.
type Client interface {
	Get(ctx context.Context, path string, headers map[string]string) (pactcore.Value, int, map[string][]string, error)
	Post(ctx context.Context, path string, headers map[string]string, body []byte) (pactcore.Value, int, map[string][]string, error)
	Put(ctx context.Context, path string, headers map[string]string, body []byte) (pactcore.Value, int, map[string][]string, error)
	Delete(ctx context.Context, path string, headers map[string]string) (pactcore.Value, int, map[string][]string, error)
}

// retryableClient is Client backed by github.com/hashicorp/go-retryablehttp,
// bounded-retrying transient network failures on replay — the interactions
// it replays are idempotent by construction (they assert against fixed
// provider-state fixtures), so a retried call is safe.
type retryableClient struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewClient returns a Client that issues requests against baseURL (e.g.
// "http://localhost:8080").
func NewClient(baseURL string, logger log.Logger) Client {
	c := retryablehttp.NewClient()
	c.Logger = retryableLogAdapter{logger}
	return &retryableClient{baseURL: baseURL, http: c}
}

func (c *retryableClient) Get(ctx context.Context, path string, headers map[string]string) (pactcore.Value, int, map[string][]string, error) {
	return c.do(ctx, http.MethodGet, path, headers, nil)
}

func (c *retryableClient) Post(ctx context.Context, path string, headers map[string]string, body []byte) (pactcore.Value, int, map[string][]string, error) {
	return c.do(ctx, http.MethodPost, path, headers, body)
}

func (c *retryableClient) Put(ctx context.Context, path string, headers map[string]string, body []byte) (pactcore.Value, int, map[string][]string, error) {
	return c.do(ctx, http.MethodPut, path, headers, body)
}

func (c *retryableClient) Delete(ctx context.Context, path string, headers map[string]string) (pactcore.Value, int, map[string][]string, error) {
	return c.do(ctx, http.MethodDelete, path, headers, nil)
}

func (c *retryableClient) do(ctx context.Context, method, path string, headers map[string]string, body []byte) (pactcore.Value, int, map[string][]string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return pactcore.Null(), 0, nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pactcore.Null(), 0, nil, errors.Wrapf(err, "replaying %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pactcore.Null(), resp.StatusCode, resp.Header, errors.Wrap(err, "reading response body")
	}

	if len(raw) == 0 {
		return pactcore.Null(), resp.StatusCode, resp.Header, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return pactcore.Null(), resp.StatusCode, resp.Header, errors.Wrap(err, "decoding response body as JSON")
	}
	return pactcore.FromAny(decoded), resp.StatusCode, resp.Header, nil
}

// retryableLogAdapter satisfies retryablehttp.LeveledLogger with
// sourcegraph/log, so retry diagnostics flow through the same structured
// logger as everything else.
type retryableLogAdapter struct {
	logger log.Logger
}

func (a retryableLogAdapter) fields(keysAndValues []any) []log.Field {
	fields := make([]log.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, _ := keysAndValues[i].(string)
		fields = append(fields, log.String(key, toString(keysAndValues[i+1])))
	}
	return fields
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func (a retryableLogAdapter) Error(msg string, kv ...any) { a.logger.Error(msg, a.fields(kv)...) }
func (a retryableLogAdapter) Info(msg string, kv ...any)  { a.logger.Info(msg, a.fields(kv)...) }
func (a retryableLogAdapter) Debug(msg string, kv ...any) { a.logger.Debug(msg, a.fields(kv)...) }
func (a retryableLogAdapter) Warn(msg string, kv ...any)  { a.logger.Warn(msg, a.fields(kv)...) }
