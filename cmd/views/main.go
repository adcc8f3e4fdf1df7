// Package main is the entry point for the views CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/views/cmd/views/commands"
	"go.trai.ch/views/internal/app"
	"go.trai.ch/views/internal/core/domain"
	_ "go.trai.ch/views/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	var cliOpts []commands.Option
	if sink, ok := components.Telemetry.(commands.ProgressSink); ok {
		cliOpts = append(cliOpts, commands.WithProgress(sink))
	}
	cli := commands.New(components.App, cliOpts...)

	if err := cli.Execute(ctx); err != nil {
		// check already printed every failure
		if errors.Is(err, domain.ErrCheckFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
