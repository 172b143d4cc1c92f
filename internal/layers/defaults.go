package layers

// Defaults applied when the request or the caller does not override
// them.
const (
	ConfigVersion     = "1.0"
	ConfigDescription = "Map layer configuration for California Protected Lands application"

	DefaultTitilerURL = "https://titiler.nrp-nautilus.io"
	DefaultColormap   = "reds"
)

// Fixed rendering defaults baked into every generated descriptor.
const (
	vectorFillColor   = "#2E7D32"
	vectorFillOpacity = 0.5
	vectorMaxZoom     = 22

	rasterOpacity  = 0.7
	rasterTileSize = 256
	rasterMaxZoom  = 12

	visibilityHidden = "none"
)
