package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stac-to-layers/generator/internal/stac"
)

var listCatalog string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a catalog's collections, their assets, and how each asset classifies",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := stac.NewFetcher()
		var cat stac.Catalog
		if err := f.Fetch(cmd.Context(), listCatalog, &cat); err != nil {
			return err
		}

		for _, link := range cat.ChildLinks() {
			loc := stac.ResolveLocation(listCatalog, link.Href)
			var col stac.Collection
			if err := f.Fetch(cmd.Context(), loc, &col); err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", col.ID, col.Title)
			for _, id := range col.AssetIDs() {
				a := col.Asset(id)
				fmt.Printf("  %s\t%s\t%s\n", id, stac.Classify(a), a.Href)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCatalog, "catalog", "", "Root catalog location")
	_ = listCmd.MarkFlagRequired("catalog")
	rootCmd.AddCommand(listCmd)
}
