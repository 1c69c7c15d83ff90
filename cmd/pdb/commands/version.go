package commands

import (
	"fmt"
	"runtime"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version and build details",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "pdb %s\n", build.Version)
			_, _ = fmt.Fprintf(out, "  commit:   %s\n", build.Commit)
			_, _ = fmt.Fprintf(out, "  built:    %s\n", build.Date)
			_, _ = fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
