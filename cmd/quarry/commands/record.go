package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <dependency>",
		Short: "Record digests of freshly built framework binaries",
		Long: `Record scans the Build directories for the dependency's framework
binaries, digests them, and merges the result into the version record.
Platforms not part of this record keep their previous entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms, _ := cmd.Flags().GetStringArray("platform")
			return c.app.Record(cmd.Context(), options(cmd), args[0], platforms)
		},
	}
	cmd.Flags().StringArrayP("platform", "p", nil, "Platform to record (repeatable); defaults to the configured set")
	return cmd
}
