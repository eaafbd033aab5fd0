// Package commands implements the CLI commands for the quarry cache tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/quarrydev/quarry/internal/app"
	"github.com/quarrydev/quarry/internal/build"
	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for quarry.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, opts app.Options, dependency string) error
	Record(ctx context.Context, opts app.Options, dependency string, platforms []string) error
	Show(ctx context.Context, opts app.Options, dependency string) (domain.VersionRecord, error)
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "quarry",
		Short:         "Reuse cached framework builds instead of rebuilding them",
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

	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project root directory containing the Build folder")
	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Project configuration file, absolute or relative to the root")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if l, ok := log.(interface{ SetVerbose(bool) }); ok {
			l.SetVerbose(verbose)
		}
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newRecordCmd())
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

// options collects the persistent flag values for a command invocation.
func options(cmd *cobra.Command) app.Options {
	root, _ := cmd.Flags().GetString("root")
	config, _ := cmd.Flags().GetString("config")

	return app.Options{
		RootDir:    root,
		ConfigFile: config,
	}
}
