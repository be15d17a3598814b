package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(r *Router, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func named(name string) HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(name))
	}
}

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets", named("list"))

	rec := record(r, http.MethodGet, "/api/v1/datasets")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list", rec.Body.String())
}

func TestSpecificWildcardBeatsCatchAll(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets/*", named("get"))
	r.GET("/api/v1/datasets/*/profile", named("profile"))

	rec := record(r, http.MethodGet, "/api/v1/datasets/abc/profile")
	assert.Equal(t, "profile", rec.Body.String())

	rec = record(r, http.MethodGet, "/api/v1/datasets/abc")
	assert.Equal(t, "get", rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets", named("list"))

	rec := record(r, http.MethodDelete, "/api/v1/datasets")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNotFound(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets", named("list"))

	rec := record(r, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMountedPrefix(t *testing.T) {
	r := New()
	r.Mount("/swagger/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("docs"))
	}))

	rec := record(r, http.MethodGet, "/swagger/index.html")
	assert.Equal(t, "docs", rec.Body.String())
}
