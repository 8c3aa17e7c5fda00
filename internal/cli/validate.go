package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/benchdraw/pkg/design"
)

func (c *CLI) validateCommand() *cobra.Command {
	var designPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog for errors without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(designPath)
			if err != nil {
				return err
			}
			res := design.ValidateCatalog(cat)
			if err := c.logValidation(res); err != nil {
				return fmt.Errorf("validation failed:\n%w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d concept(s) OK, %d warning(s)\n", len(cat.Concepts), len(res.Warnings))
			return nil
		},
	}
	cmd.Flags().StringVar(&designPath, "design", "", "design file (default: built-in concepts)")
	return cmd
}
