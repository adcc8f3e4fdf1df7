// Package commands implements the CLI commands for views.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/views/internal/app"
	"go.trai.ch/views/internal/build"
	"go.trai.ch/views/internal/core/domain"
)

// Application is the part of the app layer the CLI drives.
type Application interface {
	Render(ctx context.Context, params domain.Params, model any) (*domain.ViewStep, error)
	RenderBatch(ctx context.Context, reqs []app.RenderRequest) []app.RenderResult
	Candidates(params domain.Params) []string
	Check(ctx context.Context) []app.CheckResult
	Folder() string
	SetConcurrency(n int)
}

// ProgressSink receives the stream completed renders are reported to.
type ProgressSink interface {
	SetProgressOutput(w io.Writer)
}

// Option configures a CLI.
type Option func(*CLI)

// WithProgress lets --progress report completed renders through sink.
func WithProgress(sink ProgressSink) Option {
	return func(c *CLI) {
		c.progress = sink
	}
}

// CLI represents the command line interface for views.
type CLI struct {
	app      Application
	progress ProgressSink
	rootCmd  *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "views",
		Short:         "Resolve, compile and render view templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("progress", false, "Report every rendered template on stderr")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		progress, _ := cmd.Flags().GetBool("progress")
		if progress && c.progress != nil {
			c.progress.SetProgressOutput(cmd.ErrOrStderr())
		}
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newCandidatesCmd())
	rootCmd.AddCommand(c.newCheckCmd())
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

// SetOutput redirects standard and error output of every command.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// addJobsFlag registers the concurrency flag of batch commands.
func addJobsFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("jobs", "j", 0, "Number of views rendered at once (default: GOMAXPROCS)")
}

// applyJobs forwards a positive --jobs value to the app.
func (c *CLI) applyJobs(cmd *cobra.Command) {
	if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
		c.app.SetConcurrency(jobs)
	}
}

// addRequestFlags registers the flags that locate a view.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("area", "a", "", "Area segment of the view path")
	cmd.Flags().StringP("concern", "c", "", "Concern segment of the view path")
	cmd.Flags().StringArrayP("param", "p", nil, "Extra request parameter as key=value (repeatable)")
}
