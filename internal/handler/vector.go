package handler

import (
	"fmt"
	"strings"

	"github.com/stac-to-layers/generator/internal/layers"
	"github.com/stac-to-layers/generator/internal/registry"
	"github.com/stac-to-layers/generator/internal/result"
	"github.com/stac-to-layers/generator/internal/stac"
)

type vectorHandler struct{}

func init() {
	registry.Default.Register(&vectorHandler{})
}

func (*vectorHandler) Family() stac.Family { return stac.FamilyVector }

func (*vectorHandler) Build(col *stac.Collection, asset *stac.Asset, p registry.BuildParams) (layers.Descriptor, []result.Warning, error) {
	name := displayName(p.NameOverride, asset, col, p.Key)
	header := layers.NewHeader(p.Key, name, true)

	var schema *layers.PropertySchema
	if cols := col.FilterableColumns(); len(cols) > 0 {
		schema = layers.NewPropertySchema()
		for _, c := range cols {
			schema.Set(c.Name, layers.Property{
				Type:        semanticType(c.Type),
				Description: c.Description,
			})
		}
	}

	d := layers.NewVector(header, "pmtiles://"+asset.Href, p.Key, col.Attribution(), schema)

	// The archive's true internal layer name cannot be discovered from
	// the collection metadata, so the layer key is used as-is.
	warn := result.Warning{
		Type: "source_layer_default", Severity: "warning", LayerKey: p.Key,
		Message: fmt.Sprintf("source-layer for %q defaulted to the layer key; check it against the archive's internal layer name", p.Key),
	}
	return d, []result.Warning{warn}, nil
}

// semanticType maps a declared column type to the client filter type:
// integer and floating-point columns are numbers, everything else a
// string.
func semanticType(declared string) string {
	if strings.Contains(declared, "float") || strings.Contains(declared, "int") {
		return "number"
	}
	return "string"
}
