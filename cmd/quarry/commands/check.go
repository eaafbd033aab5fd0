package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dependency>",
		Short: "Decide whether a dependency's cached build can be reused",
		Long: `Check compares the dependency's version record against the pinned
commitish and the framework binaries on disk. Exit code 0 means every
configured platform is cached and the build can be skipped; exit code 1
means at least one platform must be rebuilt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Check(cmd.Context(), options(cmd), args[0])
		},
	}
}
