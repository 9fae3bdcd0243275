// Package app implements the application layer for cargostep.
package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cargostep/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/cargostep/internal/core/ports"
	"go.trai.ch/cargostep/internal/engine/driver"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	driver       *driver.Driver
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, drv *driver.Driver, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		driver:       drv,
		logger:       log,
	}
}

// SetOutput sets the writer that receives toolchain transcripts.
func (a *App) SetOutput(w io.Writer) {
	a.driver.SetOutput(w)
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	domain.BuildOptions

	// ToolchainConfig is an optional YAML file supplying defaults for
	// options that were not given on the command line.
	ToolchainConfig string
}

// Build compiles a single target.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	if opts.ToolchainConfig != "" {
		cfg, err := a.configLoader.Load(opts.ToolchainConfig)
		if err != nil {
			return err
		}
		cfg.ApplyDefaults(&opts.BuildOptions)
	}

	// Report phase spans through the logger.
	tp := setupOTel(telemetry.NewLogBridge(a.logger))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	phase, err := a.driver.Run(ctx, &opts.BuildOptions)
	if err != nil {
		return err
	}

	a.logger.Debug("build finished", "label", opts.Label, "phase", phase.String())
	return nil
}

func setupOTel(bridge *telemetry.LogBridge) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)

	otel.SetTracerProvider(tp)
	return tp
}
