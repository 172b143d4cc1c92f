// Package generator orchestrates a generation run: it resolves each
// layer request against the catalog, builds its descriptor through the
// handler registry, and assembles the output configuration.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stac-to-layers/generator/internal/layers"
	"github.com/stac-to-layers/generator/internal/logger"
	"github.com/stac-to-layers/generator/internal/registry"
	"github.com/stac-to-layers/generator/internal/request"
	"github.com/stac-to-layers/generator/internal/result"
	"github.com/stac-to-layers/generator/internal/stac"
)

// Generator resolves layer requests against a STAC catalog and builds
// the client layer configuration.
type Generator struct {
	opts    Options
	fetcher *stac.Fetcher
	reg     *registry.Registry
	log     *slog.Logger
}

// New returns a generator with the given options; zero-valued options
// fall back to the production defaults.
func New(opts Options) *Generator {
	if opts.TitilerURL == "" {
		opts.TitilerURL = layers.DefaultTitilerURL
	}
	if opts.Colormap == "" {
		opts.Colormap = layers.DefaultColormap
	}
	opts.TitilerURL = strings.TrimSuffix(opts.TitilerURL, "/")
	return &Generator{
		opts:    opts,
		fetcher: stac.NewFetcher(),
		reg:     registry.Default,
		log:     logger.Default,
	}
}

// Generate processes the request's layers strictly in order, one at a
// time. The first error stops the run and leaves Config nil: the
// output is only useful when complete, so nothing partial survives a
// failure. Warnings accumulate across layers and never abort.
func (g *Generator) Generate(ctx context.Context, doc *request.Document) *result.GenerateResult {
	out := &result.GenerateResult{Success: true}

	if errs := doc.Validate(); len(errs) > 0 {
		out.Success = false
		out.Errors = errs
		return out
	}

	titiler := g.opts.TitilerURL
	if doc.TitilerURL != "" {
		titiler = strings.TrimSuffix(doc.TitilerURL, "/")
	}
	colormap := g.opts.Colormap
	if doc.Colormap != "" {
		colormap = doc.Colormap
	}

	cfg := layers.NewConfig()
	for i := range doc.Layers {
		l := &doc.Layers[i]
		g.log.Info("processing layer",
			"collection", l.CollectionID, "asset", l.AssetID, "key", l.LayerKey)

		d, warns, err := g.buildLayer(ctx, doc.Catalog, l, titiler, colormap)
		out.Warnings = append(out.Warnings, warns...)
		if err != nil {
			out.Success = false
			out.Errors = append(out.Errors, *asError(err, l.LayerKey))
			return out
		}
		cfg.Add(l.LayerKey, d)
	}

	out.Config = cfg
	return out
}

func (g *Generator) buildLayer(ctx context.Context, catalog string, l *request.Layer, titiler, colormap string) (layers.Descriptor, []result.Warning, error) {
	col, loc, err := g.fetcher.ResolveCollection(ctx, catalog, l.CollectionID)
	if err != nil {
		return nil, nil, err
	}
	g.log.Debug("resolved collection", "id", col.ID, "location", loc)

	asset := col.Asset(l.AssetID)
	if asset == nil {
		return nil, nil, &result.Error{
			Type: result.TypeAssetNotFound, Severity: "error", LayerKey: l.LayerKey,
			Message:    fmt.Sprintf("asset %q not found in collection %q", l.AssetID, l.CollectionID),
			Suggestion: "Available assets: " + strings.Join(col.AssetIDs(), ", "),
		}
	}

	family := stac.Classify(asset)
	h, ok := g.reg.Get(family)
	if !ok {
		return nil, nil, &result.Error{
			Type: result.TypeClassification, Severity: "error", LayerKey: l.LayerKey,
			Message: fmt.Sprintf("cannot classify asset %q (type %q, href %q)",
				l.AssetID, asset.Type, asset.Href),
			Suggestion: "Assets must be PMTiles archives or cloud-optimized GeoTIFFs",
		}
	}

	p := registry.BuildParams{
		Key:          l.LayerKey,
		NameOverride: l.DisplayName,
		TitilerURL:   titiler,
		Colormap:     colormap,
		Rescale:      l.Options.Rescale,
	}
	if l.Options.Colormap != "" {
		p.Colormap = l.Options.Colormap
	}
	return h.Build(col, asset, p)
}

// asError converts any error into a structured result.Error, tagging
// transport and parse failures as fetch errors.
func asError(err error, layerKey string) *result.Error {
	var re *result.Error
	if errors.As(err, &re) {
		if re.LayerKey == "" {
			re.LayerKey = layerKey
		}
		return re
	}
	return result.Errorf(result.TypeFetchError, layerKey, err.Error())
}
