package stac

import "strings"

// Family is the rendering family of an asset.
type Family string

const (
	FamilyVector  Family = "vector" // PMTiles vector tile archive
	FamilyRaster  Family = "raster" // cloud-optimized GeoTIFF
	FamilyUnknown Family = "unknown"
)

// Classify determines an asset's rendering family from its declared
// media type and href. Vector is checked before raster, so an asset
// matching both rules classifies as vector. An asset matching neither
// (including an empty descriptor) is unknown.
func Classify(a *Asset) Family {
	if a == nil {
		return FamilyUnknown
	}
	mediaType := strings.ToLower(a.Type)

	if strings.Contains(mediaType, "pmtiles") || strings.HasSuffix(a.Href, ".pmtiles") {
		return FamilyVector
	}
	if strings.Contains(mediaType, "geotiff") || strings.Contains(mediaType, "cloud-optimized") ||
		strings.HasSuffix(a.Href, ".tif") {
		return FamilyRaster
	}
	return FamilyUnknown
}
