// Package main is the entry point for the gant build step runner.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/gant/cmd/gant/commands"
	"go.trai.ch/gant/internal/app"
	"go.trai.ch/gant/internal/core/domain"
	_ "go.trai.ch/gant/internal/wiring"
)

// exitInterrupted is the conventional exit code of a process stopped by SIGINT.
const exitInterrupted = 130

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization fails.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, domain.ErrInterrupted):
			components.Logger.Warn("build interrupted")
			return exitInterrupted
		case errors.Is(err, domain.ErrBuildStepFailed):
			// The step already reported its failure on the build log.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
