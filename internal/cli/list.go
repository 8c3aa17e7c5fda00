package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) listCommand() *cobra.Command {
	var designPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the concepts of a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(designPath)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tPANELS")
			for _, a := range cat.Concepts {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", a.Key, a.Name, len(a.Panels))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&designPath, "design", "", "design file (default: built-in concepts)")
	return cmd
}
