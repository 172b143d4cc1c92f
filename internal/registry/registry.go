package registry

import (
	"sync"

	"github.com/stac-to-layers/generator/internal/layers"
	"github.com/stac-to-layers/generator/internal/result"
	"github.com/stac-to-layers/generator/internal/stac"
)

// BuildParams carries the resolved per-layer inputs a handler needs.
type BuildParams struct {
	Key          string
	NameOverride string
	TitilerURL   string
	Colormap     string
	Rescale      string
}

// LayerHandler builds the descriptor for one rendering family.
type LayerHandler interface {
	Family() stac.Family
	Build(col *stac.Collection, asset *stac.Asset, p BuildParams) (layers.Descriptor, []result.Warning, error)
}

// Default is the global handler registry.
var Default = New()

// Registry holds layer handlers keyed by rendering family.
type Registry struct {
	mu       sync.RWMutex
	handlers map[stac.Family]LayerHandler
}

// New returns a new empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[stac.Family]LayerHandler)}
}

// Register adds a handler for its family.
func (r *Registry) Register(h LayerHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Family()] = h
}

// Get returns the handler for the family, or nil and false.
func (r *Registry) Get(family stac.Family) (LayerHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[family]
	return h, ok
}

// Families returns all registered rendering families.
func (r *Registry) Families() []stac.Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]stac.Family, 0, len(r.handlers))
	for f := range r.handlers {
		out = append(out, f)
	}
	return out
}
