package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_FormPayload(t *testing.T) {
	var gotContentType, gotBody, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotBody = r.PostForm.Encode()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"access_token":"abc"}`))
	}))
	t.Cleanup(srv.Close)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "secret")

	req := NewRequest(http.MethodPost, "/api/auth/login", form)
	req.Header.Set("Authorization", "Bearer tok")

	tr := NewHTTPTransport(srv.URL, srv.Client())
	resp, err := tr.RoundTrip(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, form.Encode(), gotBody)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestHTTPTransport_JSONPayload(t *testing.T) {
	var gotContentType string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	tr := NewHTTPTransport(srv.URL, srv.Client())
	_, err := tr.RoundTrip(context.Background(), NewRequest(http.MethodPost, "/api/chat/send", map[string]string{"content": "hi"}))
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{"content": "hi"}, got)
}

func TestHTTPTransport_NonSuccessStatusIsNotATransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"expired"}`))
	}))
	t.Cleanup(srv.Close)

	tr := NewHTTPTransport(srv.URL, srv.Client())
	resp, err := tr.RoundTrip(context.Background(), NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
}

func TestHTTPTransport_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	tr := NewHTTPTransport(addr, &http.Client{Timeout: time.Second})
	_, err := tr.RoundTrip(context.Background(), NewRequest(http.MethodGet, "/api/documents", nil))
	require.Error(t, err)

	cerr := Classify(nil, err)
	require.NotNil(t, cerr)
	assert.Equal(t, KindNetwork, cerr.Kind)
}
