package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/rpn/internal/core/domain"
)

const quitCommand = "q"

// interactive answers one index per input line until "q" or end of input.
func (c *CLI) interactive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	_, _ = fmt.Fprintln(out, "Please provide index of RPN as a command line parameter")
	for {
		_, _ = fmt.Fprintf(out, "Enter number between %d and %d to start\n", domain.MinIndex, domain.MaxIndex)
		_, _ = fmt.Fprintf(out, "Enter '%s' to quit\n", quitCommand)

		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == quitCommand {
			return nil
		}
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, c.app.Describe(cmd.Context(), line))
	}
}
