package stac

import (
	"context"
	"fmt"

	"github.com/stac-to-layers/generator/internal/result"
)

// ResolveCollection walks the catalog's child links in document order
// and returns the first collection whose id matches collectionID, along
// with the location it was fetched from. The search is single level:
// grandchild catalogs are not descended into.
//
// Each candidate child is fetched anew; nothing is memoized across
// calls. Catalogs are small and this is an offline tool, so the extra
// fetches are an accepted tradeoff for simplicity.
func (f *Fetcher) ResolveCollection(ctx context.Context, catalogLocation, collectionID string) (*Collection, string, error) {
	var cat Catalog
	if err := f.Fetch(ctx, catalogLocation, &cat); err != nil {
		return nil, "", err
	}

	for _, link := range cat.ChildLinks() {
		loc := ResolveLocation(catalogLocation, link.Href)
		var col Collection
		if err := f.Fetch(ctx, loc, &col); err != nil {
			return nil, "", err
		}
		if col.ID == collectionID {
			return &col, loc, nil
		}
	}

	return nil, "", result.Errorf(result.TypeCollectionNotFound, "",
		fmt.Sprintf("collection %q not found in catalog %s", collectionID, catalogLocation))
}
