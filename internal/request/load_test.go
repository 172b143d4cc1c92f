package request

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stac-to-layers/generator/internal/result"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "layers.json", `{
		"catalog": "https://example.org/stac/catalog.json",
		"titiler_url": "https://titiler.example.org",
		"layers": [
			{
				"collection_id": "cpad-2025b",
				"asset_id": "cpad-units-pmtiles",
				"layer_key": "cpad",
				"display_name": "California Protected Areas (CPAD)"
			},
			{
				"collection_id": "irrecoverable-carbon",
				"asset_id": "vulnerable-total-2018-cog",
				"layer_key": "carbon",
				"options": {"colormap": "viridis", "rescale": "0,1200"}
			}
		]
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/stac/catalog.json", doc.Catalog)
	assert.Equal(t, "https://titiler.example.org", doc.TitilerURL)
	require.Len(t, doc.Layers, 2)
	assert.Equal(t, "cpad", doc.Layers[0].LayerKey)
	assert.Equal(t, "California Protected Areas (CPAD)", doc.Layers[0].DisplayName)
	assert.Equal(t, Options{Colormap: "viridis", Rescale: "0,1200"}, doc.Layers[1].Options)
	assert.Empty(t, doc.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "layers.yaml", `
catalog: https://example.org/stac/catalog.json
colormap: reds
layers:
  - collection_id: cpad-2025b
    asset_id: cpad-units-pmtiles
    layer_key: cpad
  - collection_id: irrecoverable-carbon
    asset_id: vulnerable-total-2018-cog
    layer_key: carbon
    options:
      rescale: "0,1200"
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reds", doc.Colormap)
	require.Len(t, doc.Layers, 2)
	assert.Equal(t, "0,1200", doc.Layers[1].Options.Rescale)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "layers.toml", `
catalog = "https://example.org/stac/catalog.json"

[[layers]]
collection_id = "cpad-2025b"
asset_id = "cpad-units-pmtiles"
layer_key = "cpad"

[[layers]]
collection_id = "irrecoverable-carbon"
asset_id = "vulnerable-total-2018-cog"
layer_key = "carbon"

[layers.options]
colormap = "viridis"
`)

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Layers, 2)
	assert.Equal(t, "viridis", doc.Layers[1].Options.Colormap)
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "layers.hcl", `
catalog     = "https://example.org/stac/catalog.json"
titiler_url = "https://titiler.example.org"

layer "cpad" {
  collection_id = "cpad-2025b"
  asset_id      = "cpad-units-pmtiles"
  display_name  = "California Protected Areas (CPAD)"
}

layer "carbon" {
  collection_id = "irrecoverable-carbon"
  asset_id      = "vulnerable-total-2018-cog"
  colormap      = "viridis"
  rescale       = "0,1200"
}
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://titiler.example.org", doc.TitilerURL)
	require.Len(t, doc.Layers, 2)
	assert.Equal(t, "cpad", doc.Layers[0].LayerKey)
	assert.Equal(t, "California Protected Areas (CPAD)", doc.Layers[0].DisplayName)
	assert.Equal(t, Options{Colormap: "viridis", Rescale: "0,1200"}, doc.Layers[1].Options)
}

func TestLoadHCLEnvInterpolation(t *testing.T) {
	t.Setenv("LAYERGEN_TEST_CATALOG", "https://env.example.org/catalog.json")
	path := writeFile(t, "layers.hcl", `
catalog = env.LAYERGEN_TEST_CATALOG

layer "cpad" {
  collection_id = "cpad-2025b"
  asset_id      = "cpad-units-pmtiles"
}
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.org/catalog.json", doc.Catalog)
}

func TestLoadUnreadable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "layers.json", `{"catalog":`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestValidate(t *testing.T) {
	t.Run("missing catalog and layers", func(t *testing.T) {
		var doc Document
		errs := doc.Validate()
		require.Len(t, errs, 2)
		assert.Equal(t, result.TypeInvalidRequest, errs[0].Type)
	})

	t.Run("missing layer fields", func(t *testing.T) {
		doc := Document{
			Catalog: "https://example.org/catalog.json",
			Layers:  []Layer{{}},
		}
		errs := doc.Validate()
		require.Len(t, errs, 3)
	})

	t.Run("duplicate layer key", func(t *testing.T) {
		doc := Document{
			Catalog: "https://example.org/catalog.json",
			Layers: []Layer{
				{CollectionID: "a", AssetID: "x", LayerKey: "dup"},
				{CollectionID: "b", AssetID: "y", LayerKey: "dup"},
			},
		}
		errs := doc.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "duplicate layer key")
	})
}
