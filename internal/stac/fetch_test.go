package stac

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

func TestResolveLocation(t *testing.T) {
	cases := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{
			name: "absolute ref unchanged",
			base: "https://example.org/stac/catalog.json",
			ref:  "https://other.org/collection.json",
			want: "https://other.org/collection.json",
		},
		{
			name: "relative ref against catalog location",
			base: "https://example.org/stac/catalog.json",
			ref:  "collection.json",
			want: "https://example.org/stac/collection.json",
		},
		{
			name: "relative ref into subdirectory",
			base: "https://example.org/stac/catalog.json",
			ref:  "cpad-2025b/collection.json",
			want: "https://example.org/stac/cpad-2025b/collection.json",
		},
		{
			name: "parent-relative ref",
			base: "https://example.org/stac/nested/catalog.json",
			ref:  "../collection.json",
			want: "https://example.org/stac/collection.json",
		},
		{
			name: "s3 base",
			base: "s3://public-data/stac/catalog.json",
			ref:  "cpad/collection.json",
			want: "s3://public-data/stac/cpad/collection.json",
		},
		{
			name: "filesystem base",
			base: filepath.Join("testdata", "catalog.json"),
			ref:  "collection.json",
			want: filepath.Join("testdata", "collection.json"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveLocation(tc.base, tc.ref))
		})
	}
}

func TestFetchFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"Catalog","id":"root","links":[]}`), 0644))

	f := NewFetcher()
	var cat Catalog
	require.NoError(t, f.Fetch(context.Background(), path, &cat))
	assert.Equal(t, "root", cat.ID)
}

func TestFetchFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"type":"Catalog","id":"root","title":"Root","links":[{"rel":"child","href":"a.json"}]}`))
	}))
	defer srv.Close()

	f := NewFetcher()
	var cat Catalog
	require.NoError(t, f.Fetch(context.Background(), srv.URL+"/catalog.json", &cat))
	assert.Equal(t, "Root", cat.Title)
	assert.Len(t, cat.ChildLinks(), 1)

	err := f.Fetch(context.Background(), srv.URL+"/missing.json", &cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":`), 0644))

	var cat Catalog
	err := NewFetcher().Fetch(context.Background(), path, &cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestFetchRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"root","n":3}`), 0644))

	doc, err := NewFetcher().FetchRaw(context.Background(), path)
	require.NoError(t, err)
	m, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "root", m["id"])
}
