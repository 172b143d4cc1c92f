// Package request defines the input document naming the layers to
// generate, and loaders for the formats it can be authored in.
package request

import (
	"fmt"

	"github.com/stac-to-layers/generator/internal/result"
)

// Document is the parsed input request.
type Document struct {
	Catalog    string  `json:"catalog" yaml:"catalog" toml:"catalog"`
	TitilerURL string  `json:"titiler_url,omitempty" yaml:"titiler_url" toml:"titiler_url"`
	Colormap   string  `json:"colormap,omitempty" yaml:"colormap" toml:"colormap"`
	Layers     []Layer `json:"layers" yaml:"layers" toml:"layers"`
}

// Layer is one requested (collection, asset) pair. It is constructed
// once from input and never mutated afterwards.
type Layer struct {
	CollectionID string  `json:"collection_id" yaml:"collection_id" toml:"collection_id"`
	AssetID      string  `json:"asset_id" yaml:"asset_id" toml:"asset_id"`
	LayerKey     string  `json:"layer_key" yaml:"layer_key" toml:"layer_key"`
	DisplayName  string  `json:"display_name,omitempty" yaml:"display_name" toml:"display_name"`
	Options      Options `json:"options,omitempty" yaml:"options" toml:"options"`
}

// Options are the recognised per-layer rendering options. Both apply
// to raster layers only.
type Options struct {
	Colormap string `json:"colormap,omitempty" yaml:"colormap" toml:"colormap"`
	Rescale  string `json:"rescale,omitempty" yaml:"rescale" toml:"rescale"`
}

// Validate checks required fields. It runs before any fetching, so a
// malformed request fails without network traffic.
func (d *Document) Validate() []result.Error {
	var errs []result.Error

	if d.Catalog == "" {
		errs = append(errs, result.Error{
			Type: result.TypeInvalidRequest, Severity: "error",
			Message:    "catalog is required",
			Suggestion: `Set "catalog" to the root catalog location`,
		})
	}
	if len(d.Layers) == 0 {
		errs = append(errs, result.Error{
			Type: result.TypeInvalidRequest, Severity: "error",
			Message:    "layers must contain at least one entry",
			Suggestion: `Add entries to "layers"`,
		})
	}

	seen := make(map[string]bool)
	for i, l := range d.Layers {
		if l.CollectionID == "" {
			errs = append(errs, result.Error{
				Type: result.TypeInvalidRequest, Severity: "error", LayerKey: l.LayerKey,
				Message: fmt.Sprintf("layers[%d]: collection_id is required", i),
			})
		}
		if l.AssetID == "" {
			errs = append(errs, result.Error{
				Type: result.TypeInvalidRequest, Severity: "error", LayerKey: l.LayerKey,
				Message: fmt.Sprintf("layers[%d]: asset_id is required", i),
			})
		}
		if l.LayerKey == "" {
			errs = append(errs, result.Error{
				Type: result.TypeInvalidRequest, Severity: "error",
				Message: fmt.Sprintf("layers[%d]: layer_key is required", i),
			})
		} else if seen[l.LayerKey] {
			errs = append(errs, result.Error{
				Type: result.TypeInvalidRequest, Severity: "error", LayerKey: l.LayerKey,
				Message:    fmt.Sprintf("layers[%d]: duplicate layer key %q", i, l.LayerKey),
				Suggestion: "Layer keys must be unique within a request",
			})
		} else {
			seen[l.LayerKey] = true
		}
	}

	return errs
}
