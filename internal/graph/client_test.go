package graph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "entragraph/pkg/domain-errors"
)

type staticTokenCredential struct {
	token string
	err   error
}

func (c staticTokenCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	if c.err != nil {
		return azcore.AccessToken{}, c.err
	}
	return azcore.AccessToken{Token: c.token}, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(staticTokenCredential{token: "test-token"}, nil,
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
	)
}

func TestClient_SendsBearerAndAccept(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"id":"u1"}`))
	})

	var out struct {
		ID string `json:"id"`
	}
	err := c.get(context.Background(), "users.get", "/users/u1", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "u1", out.ID)
}

func TestClient_ExtraHeadersForwarded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eventual", r.Header.Get("ConsistencyLevel"))
		w.Write([]byte(`{}`))
	})

	var out map[string]any
	q := url.Values{}
	q.Set("$search", `"displayName:alice"`)
	err := c.get(context.Background(), "users.search", "/users", q, eventualConsistency, &out)
	require.NoError(t, err)
}

func TestClient_TokenFailureIsAuthenticationError(t *testing.T) {
	c := NewClient(staticTokenCredential{err: assert.AnError}, nil)

	err := c.get(context.Background(), "users.get", "/users/u1", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeAuthentication))
}

func TestClient_GraphErrorEnvelopeMapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":"Authorization_RequestDenied","message":"Insufficient privileges"}}`))
	})

	err := c.get(context.Background(), "users.get", "/users/u1", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamFetch))
	assert.Contains(t, err.Error(), "Authorization_RequestDenied")
	assert.Contains(t, err.Error(), "Insufficient privileges")
	assert.Contains(t, err.Error(), "status 403")
}

func TestClient_NotFoundMapsToNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"Request_ResourceNotFound","message":"Resource not found"}}`))
	})

	err := c.get(context.Background(), "users.get", "/users/missing", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestClient_NonJSONErrorBodyStillMapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	err := c.get(context.Background(), "users.get", "/users/u1", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstreamFetch))
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_NoContentWithOutIsAccepted(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.patch(context.Background(), "users.update", "/users/u1", map[string]any{"jobTitle": "Lead"})
	require.NoError(t, err)
}

func TestClient_PostEncodesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"u-new"}`))
	})

	var out struct {
		ID string `json:"id"`
	}
	err := c.post(context.Background(), "users.create", "/users", map[string]string{"displayName": "New"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "u-new", out.ID)
}
