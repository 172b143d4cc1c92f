package handler

import (
	"fmt"

	"github.com/stac-to-layers/generator/internal/layers"
	"github.com/stac-to-layers/generator/internal/registry"
	"github.com/stac-to-layers/generator/internal/result"
	"github.com/stac-to-layers/generator/internal/stac"
)

type rasterHandler struct{}

func init() {
	registry.Default.Register(&rasterHandler{})
}

func (*rasterHandler) Family() stac.Family { return stac.FamilyRaster }

func (*rasterHandler) Build(col *stac.Collection, asset *stac.Asset, p registry.BuildParams) (layers.Descriptor, []result.Warning, error) {
	name := displayName(p.NameOverride, asset, col, p.Key)
	header := layers.NewHeader(p.Key, name, false)

	tiles := fmt.Sprintf("%s/cog/tiles/WebMercatorQuad/{z}/{x}/{y}.png?url=%s&colormap_name=%s",
		p.TitilerURL, asset.Href, p.Colormap)
	if p.Rescale != "" {
		tiles += "&rescale=" + p.Rescale
	}

	return layers.NewRaster(header, []string{tiles}, col.Attribution()), nil, nil
}
