package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the full list of robustly prime numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "count:       %d\n", stats.Count)
			_, _ = fmt.Fprintf(out, "min:         %d\n", stats.Min)
			_, _ = fmt.Fprintf(out, "max:         %d\n", stats.Max)
			_, _ = fmt.Fprintf(out, "fingerprint: %016x\n", stats.Fingerprint)
			_, _ = fmt.Fprintln(out, "digits:")
			for _, n := range slices.Sorted(maps.Keys(stats.Digits)) {
				_, _ = fmt.Fprintf(out, "  %2d: %d\n", n, stats.Digits[n])
			}
			return nil
		},
	}
}
