package stac

import "sort"

// Catalog is the root STAC document. It carries no data itself, only
// links to child collections (and other relations we ignore).
type Catalog struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	StacVersion string `json:"stac_version,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Links       []Link `json:"links"`
}

// Link is a typed reference to another document. Href may be relative
// to the location of the document that contains the link.
type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Collection is a named dataset description: assets plus metadata.
type Collection struct {
	Type        string           `json:"type"`
	ID          string           `json:"id"`
	StacVersion string           `json:"stac_version,omitempty"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Links       []Link           `json:"links"`
	Assets      map[string]Asset `json:"assets"`
	Providers   []Provider       `json:"providers,omitempty"`
	Columns     []TableColumn    `json:"table:columns,omitempty"`
}

// Asset is a single addressable data artifact belonging to a collection.
type Asset struct {
	Href  string   `json:"href"`
	Type  string   `json:"type,omitempty"`
	Title string   `json:"title,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Provider is an organisation associated with a collection.
type Provider struct {
	Name  string   `json:"name"`
	URL   string   `json:"url,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// TableColumn describes one column of a tabular (vector) dataset,
// from the STAC table extension.
type TableColumn struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// ChildLinks returns the catalog's child links in document order.
func (c *Catalog) ChildLinks() []Link {
	var out []Link
	for _, l := range c.Links {
		if l.Rel == "child" {
			out = append(out, l)
		}
	}
	return out
}

// Asset returns the asset with the given id, or nil.
func (c *Collection) Asset(id string) *Asset {
	if a, ok := c.Assets[id]; ok {
		return &a
	}
	return nil
}

// AssetIDs returns the collection's asset keys in sorted order, for
// error messages and listings.
func (c *Collection) AssetIDs() []string {
	ids := make([]string, 0, len(c.Assets))
	for id := range c.Assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
