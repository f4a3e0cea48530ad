package omdb

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.baseURL = srv.URL
	c.http = srv.Client()
	return c, srv
}

func TestFetchPoster(t *testing.T) {
	posterBytes := []byte("fake-jpeg-bytes")

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/poster.jpg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(posterBytes)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "Dune", r.URL.Query().Get("t"))
		fmt.Fprintf(w, `{"Poster":"%s/poster.jpg"}`, srv.URL)
	})

	c, server := newTestClient(t, mux)
	srv = server

	img, err := c.FetchPoster(context.Background(), "Dune")
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(posterBytes), img)
}

func TestFetchPoster_NotAvailable(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Poster":"N/A"}`)
	}))

	_, err := c.FetchPoster(context.Background(), "Obscure Title")
	require.ErrorIs(t, err, ErrNoPoster)
}

func TestFetchPoster_BadStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.FetchPoster(context.Background(), "Dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
