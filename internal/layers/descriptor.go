package layers

// Descriptor is one finished layer entry: a common header plus a
// vector or raster payload.
type Descriptor interface {
	descriptor()
}

func (*VectorDescriptor) descriptor() {}
func (*RasterDescriptor) descriptor() {}

// Header holds the fields shared by every descriptor. The layer and
// checkbox ids are derived from the layer key and are what the client
// uses to toggle the layer.
type Header struct {
	DisplayName string   `json:"displayName"`
	LayerIDs    []string `json:"layerIds"`
	CheckboxID  string   `json:"checkboxId"`
	HasLegend   bool     `json:"hasLegend"`
	IsVector    bool     `json:"isVector"`
}

// NewHeader derives the identifier fields from the layer key.
func NewHeader(key, displayName string, vector bool) Header {
	id := key + "-layer"
	return Header{
		DisplayName: displayName,
		LayerIDs:    []string{id},
		CheckboxID:  id,
		HasLegend:   false,
		IsVector:    vector,
	}
}

// VectorDescriptor renders a PMTiles archive as a fill layer.
type VectorDescriptor struct {
	Header
	Source     VectorSource    `json:"source"`
	Layer      VectorStyle     `json:"layer"`
	Filterable *PropertySchema `json:"filterableProperties,omitempty"`
}

type VectorSource struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

type VectorStyle struct {
	Type        string    `json:"type"`
	SourceLayer string    `json:"source-layer"`
	MinZoom     int       `json:"minzoom"`
	MaxZoom     int       `json:"maxzoom"`
	Paint       FillPaint `json:"paint"`
	Layout      Layout    `json:"layout"`
}

type FillPaint struct {
	FillColor   string  `json:"fill-color"`
	FillOpacity float64 `json:"fill-opacity"`
}

// RasterDescriptor renders a COG through a TiTiler tile endpoint.
type RasterDescriptor struct {
	Header
	Source RasterSource `json:"source"`
	Layer  RasterStyle  `json:"layer"`
}

type RasterSource struct {
	Type        string   `json:"type"`
	Tiles       []string `json:"tiles"`
	TileSize    int      `json:"tileSize"`
	MinZoom     int      `json:"minzoom"`
	MaxZoom     int      `json:"maxzoom"`
	Attribution string   `json:"attribution"`
}

type RasterStyle struct {
	Type   string      `json:"type"`
	Paint  RasterPaint `json:"paint"`
	Layout Layout      `json:"layout"`
}

type RasterPaint struct {
	RasterOpacity float64 `json:"raster-opacity"`
}

type Layout struct {
	Visibility string `json:"visibility"`
}

// NewVector returns a vector descriptor with the default paint, zoom
// range and hidden visibility. filterable may be nil.
func NewVector(h Header, sourceURL, sourceLayer, attribution string, filterable *PropertySchema) *VectorDescriptor {
	return &VectorDescriptor{
		Header: h,
		Source: VectorSource{
			Type:        "vector",
			URL:         sourceURL,
			Attribution: attribution,
		},
		Layer: VectorStyle{
			Type:        "fill",
			SourceLayer: sourceLayer,
			MinZoom:     0,
			MaxZoom:     vectorMaxZoom,
			Paint:       FillPaint{FillColor: vectorFillColor, FillOpacity: vectorFillOpacity},
			Layout:      Layout{Visibility: visibilityHidden},
		},
		Filterable: filterable,
	}
}

// NewRaster returns a raster descriptor with the default opacity, zoom
// range and hidden visibility.
func NewRaster(h Header, tiles []string, attribution string) *RasterDescriptor {
	return &RasterDescriptor{
		Header: h,
		Source: RasterSource{
			Type:        "raster",
			Tiles:       tiles,
			TileSize:    rasterTileSize,
			MinZoom:     0,
			MaxZoom:     rasterMaxZoom,
			Attribution: attribution,
		},
		Layer: RasterStyle{
			Type:   "raster",
			Paint:  RasterPaint{RasterOpacity: rasterOpacity},
			Layout: Layout{Visibility: visibilityHidden},
		},
	}
}
