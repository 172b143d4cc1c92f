package request

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// hclDocument mirrors Document with layers as labelled blocks, the
// natural HCL shape:
//
//	catalog = "https://example.org/stac/catalog.json"
//
//	layer "cpad" {
//	  collection_id = "cpad-2025b"
//	  asset_id      = "cpad-units-pmtiles"
//	}
type hclDocument struct {
	Catalog    string     `hcl:"catalog"`
	TitilerURL string     `hcl:"titiler_url,optional"`
	Colormap   string     `hcl:"colormap,optional"`
	Layers     []hclLayer `hcl:"layer,block"`
}

type hclLayer struct {
	Key          string `hcl:"key,label"`
	CollectionID string `hcl:"collection_id"`
	AssetID      string `hcl:"asset_id"`
	DisplayName  string `hcl:"display_name,optional"`
	Colormap     string `hcl:"colormap,optional"`
	Rescale      string `hcl:"rescale,optional"`
}

func loadHCL(path string, data []byte) (*Document, error) {
	var raw hclDocument
	if err := hclsimple.Decode(path, data, hclContext(), &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	doc := &Document{
		Catalog:    raw.Catalog,
		TitilerURL: raw.TitilerURL,
		Colormap:   raw.Colormap,
	}
	for _, l := range raw.Layers {
		doc.Layers = append(doc.Layers, Layer{
			CollectionID: l.CollectionID,
			AssetID:      l.AssetID,
			LayerKey:     l.Key,
			DisplayName:  l.DisplayName,
			Options:      Options{Colormap: l.Colormap, Rescale: l.Rescale},
		})
	}
	return doc, nil
}

// hclContext exposes the process environment as env.NAME, so request
// files can reference deployment-specific endpoints without hardcoding
// them.
func hclContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	ctx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	if len(env) > 0 {
		ctx.Variables["env"] = cty.ObjectVal(env)
	}
	return ctx
}
