package generator

import "github.com/stac-to-layers/generator/internal/layers"

// Options configures generation defaults applied when the request
// document omits them.
type Options struct {
	// TitilerURL is the tile-service base URL for raster layers.
	TitilerURL string
	// Colormap is the default colormap for raster layers.
	Colormap string
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		TitilerURL: layers.DefaultTitilerURL,
		Colormap:   layers.DefaultColormap,
	}
}
