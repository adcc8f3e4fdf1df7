package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/views/internal/app"
	"go.trai.ch/views/internal/core/domain"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [actions...]",
		Short: "Render the view for each action",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			modelPath, _ := cmd.Flags().GetString("model")
			model, err := loadModel(modelPath)
			if err != nil {
				return err
			}

			reqs := make([]app.RenderRequest, 0, len(args))
			for _, action := range args {
				params, err := requestParams(cmd, action)
				if err != nil {
					return err
				}
				reqs = append(reqs, app.RenderRequest{Params: params, Model: model})
			}

			out := cmd.OutOrStdout()
			if len(reqs) == 1 {
				step, err := c.app.Render(cmd.Context(), reqs[0].Params, reqs[0].Model)
				if errors.Is(err, domain.ErrTemplateNotFound) {
					return nil
				}
				if err != nil {
					return err
				}
				_, _ = io.WriteString(out, step.Content)
				return nil
			}

			c.applyJobs(cmd)
			var errs []error
			for _, res := range c.app.RenderBatch(cmd.Context(), reqs) {
				action := res.Params.Get(domain.ParamAction)
				switch {
				case errors.Is(res.Err, domain.ErrTemplateNotFound):
					_, _ = fmt.Fprintf(out, "==> %s: no view\n", action)
				case res.Err != nil:
					_, _ = fmt.Fprintf(out, "==> %s: failed\n", action)
					errs = append(errs, res.Err)
				default:
					_, _ = fmt.Fprintf(out, "==> %s: %s (%s)\n%s\n", action, res.Step.Name, res.Step.ContentType, res.Step.Content)
				}
			}
			return errors.Join(errs...)
		},
	}
	addRequestFlags(cmd)
	addJobsFlag(cmd)
	cmd.Flags().StringP("model", "m", "", "YAML or JSON file holding the model")
	return cmd
}
