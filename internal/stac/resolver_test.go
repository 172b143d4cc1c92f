package stac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stac-to-layers/generator/internal/result"
)

func newCatalogServer(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveCollection(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{
		"/stac/catalog.json": `{
			"type": "Catalog", "id": "root",
			"links": [
				{"rel": "self", "href": "catalog.json"},
				{"rel": "child", "href": "cpad-2025b/collection.json"},
				{"rel": "child", "href": "irrecoverable-carbon/collection.json"}
			]
		}`,
		"/stac/cpad-2025b/collection.json": `{
			"type": "Collection", "id": "cpad-2025b", "title": "CPAD", "links": [], "assets": {}
		}`,
		"/stac/irrecoverable-carbon/collection.json": `{
			"type": "Collection", "id": "irrecoverable-carbon", "title": "Irrecoverable Carbon", "links": [], "assets": {}
		}`,
	})

	f := NewFetcher()
	col, loc, err := f.ResolveCollection(context.Background(), srv.URL+"/stac/catalog.json", "irrecoverable-carbon")
	require.NoError(t, err)
	assert.Equal(t, "irrecoverable-carbon", col.ID)
	assert.Equal(t, srv.URL+"/stac/irrecoverable-carbon/collection.json", loc)
}

func TestResolveCollectionAbsoluteChildLink(t *testing.T) {
	other := newCatalogServer(t, map[string]string{
		"/collection.json": `{"type": "Collection", "id": "remote", "links": [], "assets": {}}`,
	})
	srv := newCatalogServer(t, map[string]string{
		"/catalog.json": `{
			"type": "Catalog", "id": "root",
			"links": [{"rel": "child", "href": "` + other.URL + `/collection.json"}]
		}`,
	})

	col, loc, err := NewFetcher().ResolveCollection(context.Background(), srv.URL+"/catalog.json", "remote")
	require.NoError(t, err)
	assert.Equal(t, "remote", col.ID)
	assert.Equal(t, other.URL+"/collection.json", loc)
}

func TestResolveCollectionNotFound(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{
		"/catalog.json": `{
			"type": "Catalog", "id": "root",
			"links": [{"rel": "child", "href": "a.json"}]
		}`,
		"/a.json": `{"type": "Collection", "id": "a", "links": [], "assets": {}}`,
	})

	_, _, err := NewFetcher().ResolveCollection(context.Background(), srv.URL+"/catalog.json", "missing")
	require.Error(t, err)
	var re *result.Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, result.TypeCollectionNotFound, re.Type)
	assert.Contains(t, re.Message, `"missing"`)
}

func TestResolveCollectionDoesNotRecurse(t *testing.T) {
	// The grandchild collection is only reachable through a nested
	// catalog; a single-level search must not find it.
	srv := newCatalogServer(t, map[string]string{
		"/catalog.json": `{
			"type": "Catalog", "id": "root",
			"links": [{"rel": "child", "href": "nested/catalog.json"}]
		}`,
		"/nested/catalog.json": `{
			"type": "Catalog", "id": "nested",
			"links": [{"rel": "child", "href": "deep.json"}]
		}`,
		"/nested/deep.json": `{"type": "Collection", "id": "deep", "links": [], "assets": {}}`,
	})

	_, _, err := NewFetcher().ResolveCollection(context.Background(), srv.URL+"/catalog.json", "deep")
	require.Error(t, err)
	var re *result.Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, result.TypeCollectionNotFound, re.Type)
}

func TestResolveCollectionFetchFailure(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{
		"/catalog.json": `{
			"type": "Catalog", "id": "root",
			"links": [{"rel": "child", "href": "gone.json"}]
		}`,
	})

	_, _, err := NewFetcher().ResolveCollection(context.Background(), srv.URL+"/catalog.json", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
