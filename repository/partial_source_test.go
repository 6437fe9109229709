package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePartialSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "partials"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partials", "header.html"), []byte("<header/>"), 0o600))

	src := NewFilePartialSource(dir)
	html, err := src.Fetch(context.Background(), "partials/header.html")
	require.NoError(t, err)
	assert.Equal(t, "<header/>", html)

	_, err = src.Fetch(context.Background(), "partials/missing.html")
	assert.Error(t, err)
}

func TestFilePartialSource_StaysInRoot(t *testing.T) {
	dir := t.TempDir()
	src := NewFilePartialSource(filepath.Join(dir, "root"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.html"), []byte("x"), 0o600))

	_, err := src.Fetch(context.Background(), "../secret.html")
	assert.Error(t, err)
}

func TestHTTPPartialSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/partials/footer.html" {
			w.Write([]byte("<footer/>"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := NewHTTPPartialSource(srv.URL + "/")
	html, err := src.Fetch(context.Background(), "/partials/footer.html")
	require.NoError(t, err)
	assert.Equal(t, "<footer/>", html)

	_, err = src.Fetch(context.Background(), "partials/nope.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestNewPartialSource(t *testing.T) {
	assert.IsType(t, &HTTPPartialSource{}, NewPartialSource("partials", "https://techimpact.online"))
	assert.IsType(t, &FilePartialSource{}, NewPartialSource("partials", ""))
}
