package main

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/stac-to-layers/generator/internal/stac"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <location> <jsonpath>",
	Short: "Fetch a document and print JSONPath matches",
	Long: `Fetch a catalog or collection document and print the values matching a
JSONPath expression, e.g.

  layergen inspect https://example.org/stac/catalog.json '$.links[?(@.rel=="child")].href'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := jp.ParseString(args[1])
		if err != nil {
			return fmt.Errorf("invalid jsonpath %q: %w", args[1], err)
		}
		doc, err := stac.NewFetcher().FetchRaw(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, m := range x.Get(doc) {
			fmt.Println(oj.JSON(m, 2))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
