package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// requestParams builds the request parameters for action from the request flags.
func requestParams(cmd *cobra.Command, action string) (domain.Params, error) {
	area, _ := cmd.Flags().GetString("area")
	concern, _ := cmd.Flags().GetString("concern")
	extra, _ := cmd.Flags().GetStringArray("param")

	params := domain.Params{}
	for _, kv := range extra {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.New("parameter must be key=value"), "param", kv)
		}
		params[strings.ToLower(key)] = value
	}
	params[domain.ParamArea] = area
	params[domain.ParamConcern] = concern
	params[domain.ParamAction] = action
	return params, nil
}

// loadModel decodes a YAML or JSON model file. An empty path yields an empty model.
func loadModel(path string) (map[string]any, error) {
	model := map[string]any{}
	if path == "" {
		return model, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read model file"), "path", path)
	}
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse model file"), "path", path)
	}
	if model == nil {
		model = map[string]any{}
	}
	return model, nil
}
