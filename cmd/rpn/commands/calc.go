package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <index...>",
		Short: "Print the robustly prime number at each index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.describeAll(cmd, args)
			return nil
		},
	}
}
