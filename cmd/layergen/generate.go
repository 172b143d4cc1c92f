package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stac-to-layers/generator/internal/generator"
	"github.com/stac-to-layers/generator/internal/layers"
	"github.com/stac-to-layers/generator/internal/request"
)

var (
	inputPath    string
	outputPath   string
	catalogURL   string
	layerSpecs   []string
	titilerURL   string
	colormapName string
	jsonErrors   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Resolve layer requests and write the layers-config document",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadRequest()
		if err != nil {
			return err
		}

		g := generator.New(generator.Options{
			TitilerURL: titilerURL,
			Colormap:   colormapName,
		})
		res := g.Generate(cmd.Context(), doc)

		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "WARN [%s] %s\n", w.LayerKey, w.Message)
		}
		if !res.Success {
			if jsonErrors {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				_ = enc.Encode(res)
			} else {
				for _, e := range res.Errors {
					fmt.Fprintf(os.Stderr, "ERROR [%s] %s\n", e.LayerKey, e.Message)
					if e.Suggestion != "" {
						fmt.Fprintf(os.Stderr, "  suggestion: %s\n", e.Suggestion)
					}
				}
			}
			return errors.New("generation failed")
		}

		if err := layers.WriteFile(outputPath, res.Config); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d layer(s) to %s\n", res.Config.Len(), outputPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&inputPath, "input", "", "Path to a request file (.json, .yaml, .toml, or .hcl)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for the layers-config document")
	generateCmd.Flags().StringVar(&catalogURL, "catalog", "", "Root catalog location (when not using --input)")
	generateCmd.Flags().StringArrayVar(&layerSpecs, "layer", nil, "Layer spec COLLECTION:ASSET:KEY[:NAME] (repeatable, when not using --input)")
	generateCmd.Flags().StringVar(&titilerURL, "titiler", layers.DefaultTitilerURL, "TiTiler base URL for raster tiles")
	generateCmd.Flags().StringVar(&colormapName, "colormap", layers.DefaultColormap, "Default colormap for raster layers")
	generateCmd.Flags().BoolVar(&jsonErrors, "json", false, "Report errors as JSON on stdout")
	_ = generateCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(generateCmd)
}

// loadRequest builds the request document either from --input or from
// the legacy --catalog/--layer flags.
func loadRequest() (*request.Document, error) {
	if inputPath != "" {
		return request.Load(inputPath)
	}
	if catalogURL == "" || len(layerSpecs) == 0 {
		return nil, errors.New("specify either --input or both --catalog and --layer")
	}

	doc := &request.Document{Catalog: catalogURL}
	for _, spec := range layerSpecs {
		parts := strings.SplitN(spec, ":", 4)
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid layer spec %q, want COLLECTION:ASSET:KEY[:NAME]", spec)
		}
		l := request.Layer{
			CollectionID: parts[0],
			AssetID:      parts[1],
			LayerKey:     parts[2],
		}
		if len(parts) == 4 {
			l.DisplayName = parts[3]
		}
		doc.Layers = append(doc.Layers, l)
	}
	return doc, nil
}
