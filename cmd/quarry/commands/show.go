package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <dependency>",
		Short: "Print the recorded cache state of a dependency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.app.Show(cmd.Context(), options(cmd), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range record.Platforms() {
				cache := record[p]
				_, _ = fmt.Fprintf(out, "%s @ %s\n", p, cache.Commitish)
				for _, fw := range cache.Frameworks {
					_, _ = fmt.Fprintf(out, "  %s  %s\n", fw.Digest, fw.Name)
				}
			}
			return nil
		},
	}
}
