package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
		case "/missing":
			http.NotFound(w, r)
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 128)))
		}
	}))
	defer srv.Close()

	c := New(WithMaxBytes(64))
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		body, err := c.Fetch(ctx, "geometry", srv.URL+"/ok")
		require.NoError(t, err)
		assert.Contains(t, string(body), "FeatureCollection")
	})

	t.Run("non-2xx", func(t *testing.T) {
		_, err := c.Fetch(ctx, "geometry", srv.URL+"/missing")
		require.Error(t, err)
		assert.True(t, errors.IsSourceUnavailable(err))
		var se *errors.SourceError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
		assert.Equal(t, "geometry", se.Source)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := c.Fetch(ctx, "geometry", srv.URL+"/big")
		require.Error(t, err)
		assert.True(t, errors.IsSourceUnavailable(err))
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := c.Fetch(ctx, "geometry", "http://127.0.0.1:1/none")
		require.Error(t, err)
		assert.True(t, errors.IsSourceUnavailable(err))
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := c.Fetch(ctx, "geometry", "://bad")
		assert.Error(t, err)
	})
}

func TestFetchSingleAttemptTimeout(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New(WithTimeout(50 * time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, c.Timeout())

	_, err := c.Fetch(context.Background(), "geometry", srv.URL)
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(err))
	assert.True(t, errors.IsSourceUnavailable(err))
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Fetch(ctx, "geometry", srv.URL)
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestAuthenticators(t *testing.T) {
	newReq := func() *http.Request {
		u, _ := url.Parse("https://example.com/prov.geojson?v=1")
		return &http.Request{URL: u, Header: make(http.Header)}
	}

	req := newReq()
	(&NoAuth{}).Apply(req, "tok")
	assert.Empty(t, req.Header)

	req = newReq()
	(&BearerAuth{}).Apply(req, "tok")
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))

	req = newReq()
	(&HeaderAuth{Header: "X-Token"}).Apply(req, "tok")
	assert.Equal(t, "tok", req.Header.Get("X-Token"))

	req = newReq()
	(&QueryAuth{Param: "token"}).Apply(req, "tok")
	assert.Equal(t, "tok", req.URL.Query().Get("token"))
	assert.Equal(t, "1", req.URL.Query().Get("v"))

	(&QueryAuth{Param: "token"}).Apply(&http.Request{Header: make(http.Header)}, "tok")
}

func TestDoAppliesAuth(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	_, err := New(WithAuth(&BearerAuth{}, "secret")).Fetch(context.Background(), "geometry", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", got)
}
