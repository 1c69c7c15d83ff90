package commands

import "github.com/spf13/cobra"

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover solutions below the roots and link them to their projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Scan(cmd.Context(), cmd.OutOrStdout(), options(cmd))
		},
	}
	cmd.Flags().BoolP("projects", "p", false, "Discover project files instead of solutions")
	return cmd
}
