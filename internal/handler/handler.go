// Package handler builds layer descriptors per rendering family.
// Handlers register themselves with registry.Default on import.
package handler

import (
	"github.com/stac-to-layers/generator/internal/stac"
)

// displayName resolves the name shown in the client layer list:
// explicit override, then the asset's title, then the collection's
// title, then the layer key itself.
func displayName(override string, asset *stac.Asset, col *stac.Collection, key string) string {
	switch {
	case override != "":
		return override
	case asset.Title != "":
		return asset.Title
	case col.Title != "":
		return col.Title
	}
	return key
}
