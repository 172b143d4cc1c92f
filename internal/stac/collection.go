package stac

import "fmt"

// structuralColumns are never exposed for filtering: the geometry
// column and the hierarchical spatial index columns.
var structuralColumns = map[string]bool{
	"geometry": true,
	"h10":      true,
	"h9":       true,
	"h8":       true,
	"h0":       true,
}

// Attribution derives a linked attribution string from the collection's
// first "about" link and first provider name. Both must be present,
// otherwise the result is empty; attribution is optional metadata and
// its absence is never an error.
func (c *Collection) Attribution() string {
	var about string
	for _, l := range c.Links {
		if l.Rel == "about" {
			about = l.Href
			break
		}
	}
	var provider string
	if len(c.Providers) > 0 {
		provider = c.Providers[0].Name
	}
	if about == "" || provider == "" {
		return ""
	}
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, about, provider)
}

// FilterableColumns returns the collection's table columns with the
// structural columns removed, preserving source order.
func (c *Collection) FilterableColumns() []TableColumn {
	var out []TableColumn
	for _, col := range c.Columns {
		if structuralColumns[col.Name] {
			continue
		}
		out = append(out, col)
	}
	return out
}
