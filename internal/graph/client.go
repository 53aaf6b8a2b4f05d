package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	graphmetrics "entragraph/internal/graph/metrics"
	dErrors "entragraph/pkg/domain-errors"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client is a thin authenticated REST client for the Microsoft Graph API.
// It owns bearer-token acquisition and error translation; token caching and
// refresh are delegated to the underlying azcore credential. The client never
// retries and never caches responses.
type Client struct {
	baseURL string
	cred    azcore.TokenCredential
	scopes  []string
	httpc   *http.Client
	logger  *slog.Logger
	metrics *graphmetrics.Metrics
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = hc }
}

// WithBaseURL overrides the Graph endpoint. Intended for tests.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.baseURL = base }
}

func WithClientLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

func WithClientMetrics(m *graphmetrics.Metrics) ClientOption {
	return func(c *Client) { c.metrics = m }
}

// NewClient builds a Graph client bound to the given credential and scopes.
// Scopes default to the Graph default scope when unspecified. No network call
// is made until the client issues its first request.
func NewClient(cred azcore.TokenCredential, scopes []string, opts ...ClientOption) *Client {
	if len(scopes) == 0 {
		scopes = []string{DefaultScope}
	}
	c := &Client{
		baseURL: defaultBaseURL,
		cred:    cred,
		scopes:  scopes,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// graphErrorEnvelope is the Graph API's standard error body.
type graphErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) get(ctx context.Context, operation, path string, query url.Values, headers map[string]string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, operation, http.MethodGet, u, headers, nil, out)
}

// getURL issues a GET against a raw URL, used to follow @odata.nextLink
// cursors which are absolute URLs minted by the server.
func (c *Client) getURL(ctx context.Context, operation, rawURL string, out any) error {
	return c.do(ctx, operation, http.MethodGet, rawURL, nil, nil, out)
}

func (c *Client) post(ctx context.Context, operation, path string, body, out any) error {
	return c.do(ctx, operation, http.MethodPost, c.baseURL+path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, operation, path string, body any) error {
	return c.do(ctx, operation, http.MethodPatch, c.baseURL+path, nil, body, nil)
}

func (c *Client) put(ctx context.Context, operation, path string, body any) error {
	return c.do(ctx, operation, http.MethodPut, c.baseURL+path, nil, body, nil)
}

func (c *Client) delete(ctx context.Context, operation, path string) error {
	return c.do(ctx, operation, http.MethodDelete, c.baseURL+path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, operation, method, rawURL string, headers map[string]string, body, out any) error {
	start := time.Now()

	token, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: c.scopes})
	if err != nil {
		c.metrics.ObserveRequest(operation, "error", start)
		return dErrors.Wrap(err, dErrors.CodeAuthentication, "failed to acquire Graph token")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.metrics.ObserveRequest(operation, "error", start)
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		c.metrics.ObserveRequest(operation, "error", start)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(operation, "error", start)
		return dErrors.Wrap(err, dErrors.CodeUpstreamFetch, fmt.Sprintf("%s: request failed", operation))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := c.responseError(operation, resp)
		c.logger.ErrorContext(ctx, "graph request failed",
			"operation", operation,
			"status", resp.StatusCode,
			"error", err,
		)
		c.metrics.ObserveRequest(operation, "error", start)
		return err
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.metrics.ObserveRequest(operation, "error", start)
			return dErrors.Wrap(err, dErrors.CodeUpstreamFetch, fmt.Sprintf("%s: malformed response", operation))
		}
	}

	c.metrics.ObserveRequest(operation, "success", start)
	return nil
}

func (c *Client) responseError(operation string, resp *http.Response) error {
	var envelope graphErrorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &envelope)

	msg := fmt.Sprintf("%s: graph returned status %d", operation, resp.StatusCode)
	if envelope.Error.Code != "" {
		msg = fmt.Sprintf("%s: %s: %s (status %d)", operation, envelope.Error.Code, envelope.Error.Message, resp.StatusCode)
	}

	if resp.StatusCode == http.StatusNotFound {
		return dErrors.New(dErrors.CodeNotFound, msg)
	}
	return dErrors.New(dErrors.CodeUpstreamFetch, msg)
}
