// Package commands implements the CLI commands for pdb.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/app"
	"github.com/5l1v3r1/ProjectDependencyBrowser/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for pdb.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Scan(ctx context.Context, w io.Writer, opts app.Options) error
	Show(ctx context.Context, w io.Writer, path string, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pdb",
		Short:         "Browse the solutions and projects of a source tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Settings file (default .pdb.yaml in the working directory)")
	flags.StringSliceP("root", "r", []string{"."}, "Directory to search, repeatable")
	flags.StringP("include", "i", "", "Space separated terms every path must contain")
	flags.StringP("exclude", "e", "", "Space separated terms no path may contain")
	flags.String("extension", ".sln", "Suffix of the files to discover")
	flags.Bool("ignore-failures", false, "Record failing files and continue instead of stopping")
	flags.IntP("workers", "j", 0, "Number of files loaded concurrently (default one per CPU)")
	flags.StringP("format", "o", "text", "Output format: text, json or yaml")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.StringSlice("protected-dir", nil, "Directory never searched, repeatable")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func options(cmd *cobra.Command) app.Options {
	configFile, _ := cmd.Flags().GetString("config")
	return app.Options{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	}
}
