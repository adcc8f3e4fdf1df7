// Package plugins implements the source preprocessors run before a template is compiled.
package plugins

import (
	"context"

	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
)

var _ ports.Plugin = Pipeline(nil)

// Pipeline runs plugins left to right, each receiving the previous plugin's output.
type Pipeline []ports.Plugin

// Name implements ports.Plugin.
func (p Pipeline) Name() string { return "pipeline" }

// Execute implements ports.Plugin. The first failing plugin stops the pipeline.
func (p Pipeline) Execute(ctx context.Context, req *domain.Request, params domain.Params, source string) (string, error) {
	out := source
	for _, plugin := range p {
		var err error
		out, err = plugin.Execute(ctx, req, params, out)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// Names returns the plugin names in execution order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, plugin := range p {
		names[i] = plugin.Name()
	}
	return names
}
