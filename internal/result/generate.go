package result

import "github.com/stac-to-layers/generator/internal/layers"

// GenerateResult is the outcome of one generation run. Config is set
// only when Success is true; a failed run produces no configuration at
// all, since a partial one would be misleading.
type GenerateResult struct {
	Success  bool           `json:"success"`
	Config   *layers.Config `json:"-"`
	Errors   []Error        `json:"errors,omitempty"`
	Warnings []Warning      `json:"warnings,omitempty"`
}
