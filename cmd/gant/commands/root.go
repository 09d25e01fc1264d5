// Package commands implements the CLI commands for gant.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gant/internal/app"
	"go.trai.ch/gant/internal/build"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
)

// CLI represents the command line interface for gant.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, stepNames []string, opts app.RunOptions) error
	CheckHome(path string) domain.ValidationResult
	Installations() ([]domain.Installation, error)
	AddInstallation(inst domain.Installation) error
	RemoveInstallation(name string) error
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gant",
		Short:         "Run Gant build steps",
		Long:          domain.DisplayName + ": runs the Gant build steps declared in gant.yaml.",
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

	rootCmd.PersistentFlags().Bool("json", false, "Write log messages as JSON")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		enabled, _ := cmd.Flags().GetBool("json")
		if jl, ok := c.logger.(jsonLogger); ok && enabled {
			jl.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCheckHomeCmd())
	rootCmd.AddCommand(c.newInstallationsCmd())
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
