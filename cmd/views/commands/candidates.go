package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *CLI) newCandidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates <action>",
		Short: "List the template names tried for an action, most specific first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := requestParams(cmd, args[0])
			if err != nil {
				return err
			}
			abs, _ := cmd.Flags().GetBool("absolute")

			for _, name := range c.app.Candidates(params) {
				if abs {
					name = filepath.Join(c.app.Folder(), name)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().Bool("absolute", false, "Print paths joined with the template folder")
	return cmd
}
