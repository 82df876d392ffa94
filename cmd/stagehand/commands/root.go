// Package commands implements the CLI commands for stagehand.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stagehand/internal/adapters/config"
	"go.trai.ch/stagehand/internal/app"
	"go.trai.ch/stagehand/internal/build"
	"go.trai.ch/stagehand/internal/core/domain"
)

// CLI represents the command line interface for stagehand.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	configPath string
}

// Application represents the application logic interface.
type Application interface {
	Plan(ctx context.Context, opts app.PlanOptions) (*domain.Plan, error)
	Render(w io.Writer, plan *domain.Plan, format domain.Format) error
	Explain(ctx context.Context, opts app.PlanOptions, action string) (*app.Explanation, error)
	Actions() []string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stagehand",
		Short:         "Plan the build steps of a multi-stage compiler bootstrap",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultFileName, "Path to the bootstrap configuration")

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newExplainCmd())
	rootCmd.AddCommand(c.newActionsCmd())
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

// addSelectionFlags registers the flags shared by every command that builds a request.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("stage", "s", app.ConfiguredStage, "Bootstrap stage to reach (default: the configured stage)")
	cmd.Flags().StringSlice("host", nil, "Restrict to these configured hosts (repeatable)")
	cmd.Flags().StringSlice("target", nil, "Restrict to these configured targets (repeatable)")
}

func (c *CLI) selectionOptions(cmd *cobra.Command) app.PlanOptions {
	stage, _ := cmd.Flags().GetInt("stage")
	hosts, _ := cmd.Flags().GetStringSlice("host")
	targets, _ := cmd.Flags().GetStringSlice("target")

	return app.PlanOptions{
		ConfigPath: c.configPath,
		Stage:      stage,
		Hosts:      hosts,
		Targets:    targets,
	}
}
