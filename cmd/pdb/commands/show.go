package commands

import "github.com/spf13/cobra"

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Show one solution with its projects, or one project with the solutions using it",
		Long: `Show loads a single solution or project file.

For a solution, its projects are resolved. With --ignore-failures, projects that fail to load
are listed as failures instead of stopping the command.

For a project, the solutions below --root are searched for references to it. Solutions that
fail to load are skipped during that search.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Show(cmd.Context(), cmd.OutOrStdout(), args[0], options(cmd))
		},
	}
}
