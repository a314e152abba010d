// Package commands implements the CLI commands for rpn.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rpn/internal/adapters/config"
	"go.trai.ch/rpn/internal/build"
	"go.trai.ch/rpn/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Configure(path string, overrides ...func(*domain.Settings)) error
	Describe(ctx context.Context, input string) string
	Stats(ctx context.Context) (domain.Stats, error)
}

// CLI represents the command line interface for rpn.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	debugHook func(bool)
	jsonHook  func(bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "rpn [index...]",
		Short: "Look up robustly prime numbers by index",
		Long: fmt.Sprintf(
			"Prints the n-th robustly prime number for each index given, where %d <= n <= %d.\n"+
				"Without arguments an interactive prompt reads indices until 'q'.",
			domain.MinIndex, domain.MaxIndex,
		),
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.configure,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.interactive(cmd)
			}
			c.describeAll(cmd, args)
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	flags.IntP("workers", "w", 0, "Number of concurrent search workers (default: number of CPUs)")
	flags.Bool("validate", false, "Re-check every generated value before answering")
	flags.Duration("timeout", 0, "Abort generation after this long (0 disables)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("log-json", false, "Write log records as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newCalcCmd())
	rootCmd.AddCommand(c.newStatsCmd())
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

// SetInput sets the stream the interactive prompt reads from.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetDebugHook registers fn to be called with the value of --debug before any command runs.
func (c *CLI) SetDebugHook(fn func(bool)) {
	c.debugHook = fn
}

// SetJSONHook registers fn to be called with the value of --log-json before any command runs.
func (c *CLI) SetJSONHook(fn func(bool)) {
	c.jsonHook = fn
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	debug, err := flags.GetBool("debug")
	if err != nil {
		return err
	}
	if c.debugHook != nil {
		c.debugHook(debug)
	}

	logJSON, err := flags.GetBool("log-json")
	if err != nil {
		return err
	}
	if c.jsonHook != nil {
		c.jsonHook(logJSON)
	}

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}

	var overrides []func(*domain.Settings)
	if flags.Changed("workers") {
		workers, err := flags.GetInt("workers")
		if err != nil {
			return err
		}
		overrides = append(overrides, func(s *domain.Settings) { s.Workers = workers })
	}
	if flags.Changed("validate") {
		validate, err := flags.GetBool("validate")
		if err != nil {
			return err
		}
		overrides = append(overrides, func(s *domain.Settings) { s.Validate = validate })
	}
	if flags.Changed("timeout") {
		timeout, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		overrides = append(overrides, func(s *domain.Settings) { s.Timeout = timeout })
	}

	return c.app.Configure(path, overrides...)
}

func (c *CLI) describeAll(cmd *cobra.Command, inputs []string) {
	for _, input := range inputs {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.Describe(cmd.Context(), input))
	}
}
