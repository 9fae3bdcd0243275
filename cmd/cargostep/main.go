// Package main is the entry point for the cargostep build-step driver.
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
	"go.trai.ch/cargostep/cmd/cargostep/commands"
	"go.trai.ch/cargostep/internal/app"
	"go.trai.ch/cargostep/internal/core/domain"
	_ "go.trai.ch/cargostep/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	logs, _ := components.Logger.(commands.LogSettings)
	if w, ok := components.Logger.(interface{ SetOutput(io.Writer) }); ok {
		w.SetOutput(stderr)
	}
	components.App.SetOutput(stdout)

	cli := commands.New(components.App, logs)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		return exitCode(err, components)
	}
	return 0
}

// exitCode maps a failed build to the process exit code. Toolchain failures
// already printed their transcript and exit with the toolchain's own code.
func exitCode(err error, components *app.Components) int {
	var failure *domain.ToolchainFailure
	if errors.As(err, &failure) && failure.ExitCode > 0 {
		return failure.ExitCode
	}
	components.Logger.Error(err)
	return 1
}
