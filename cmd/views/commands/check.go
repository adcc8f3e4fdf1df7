package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile every template under the template folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyJobs(cmd)
			out := cmd.OutOrStdout()
			results := c.app.Check(cmd.Context())

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", r.Name, r.Err)
					continue
				}
				_, _ = fmt.Fprintf(out, "ok   %s %016x\n", r.Name, r.Digest)
			}
			_, _ = fmt.Fprintf(out, "%d templates, %d failed\n", len(results), failed)

			if failed > 0 {
				return zerr.With(zerr.Wrap(domain.ErrCheckFailed, "check"), "failed", failed)
			}
			return nil
		},
	}
	addJobsFlag(cmd)
	return cmd
}
