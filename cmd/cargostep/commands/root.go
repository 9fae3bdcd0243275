// Package commands implements the CLI commands for cargostep.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cargostep/internal/app"
	"go.trai.ch/cargostep/internal/build"
	"go.trai.ch/cargostep/internal/core/domain"
)

// CLI represents the command line interface for cargostep.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
}

// LogSettings is implemented by loggers whose format can be switched at runtime.
type LogSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogSettings) *CLI {
	c := &CLI{
		app:  a,
		logs: logs,
	}

	rootCmd := &cobra.Command{
		Use:           "cargostep",
		Short:         "Build a single Rust crate as one step of a larger build graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          depsArgs,
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

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		logJSON, _ := cmd.Flags().GetBool("log-json")
		c.logs.SetVerbose(verbose)
		c.logs.SetJSON(logJSON)
	}

	c.rootCmd = rootCmd
	c.bindBuildFlags(rootCmd)
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

// bindBuildFlags registers the build flags on cmd and makes it run the build.
// Required options are validated after the toolchain config is merged, so
// none of them are marked required here.
func (c *CLI) bindBuildFlags(cmd *cobra.Command) {
	var (
		opts         app.BuildOptions
		artifactType string
	)

	f := cmd.Flags()
	f.StringVar(&artifactType, "type", "", "Artifact type: lib or bin")
	f.StringVar(&opts.Name, "name", "", "Artifact name")
	f.StringVar(&opts.OutDir, "out-dir", "", "Output directory for this target")
	f.StringVar(&opts.GenDir, "gen-dir", "", "Generated-source directory for this target")
	f.StringVar(&opts.RootOutDir, "root-out-dir", "", "Root output directory of the build graph")
	f.StringVar(&opts.RootGenDir, "root-gen-dir", "", "Root generated-source directory of the build graph")
	f.StringVar(&opts.CrateRoot, "crate-root", "", "Directory containing the crate's Cargo.toml")
	f.StringVar(&opts.Cargo, "cargo", "", "Path to the cargo binary")
	f.StringVar(&opts.Rustc, "rustc", "", "Path to the rustc binary")
	f.StringVar(&opts.TargetTriple, "target-triple", "", "Target platform triple")
	f.StringVar(&opts.Label, "label", "", "Build label of the target, e.g. //path/to:name")
	f.StringVar(&opts.CMakeDir, "cmake-dir", "", "Directory containing the cmake binary, appended to PATH")
	f.StringVar(&opts.VendorDir, "vendor-directory", "", "Directory of vendored crates")
	f.StringVar(&opts.SharedLibs, "shared-libs-root", "", "Root directory of shared native libraries")
	f.StringVar(&opts.Sysroot, "sysroot", "", "Sysroot for cross-compilation (requires --clang_prefix)")
	f.StringVar(&opts.ClangPrefix, "clang_prefix", "", "Directory containing clang for cross-compilation (requires --sysroot)")
	f.BoolVar(&opts.Release, "release", false, "Build in release mode")
	f.BoolVar(&opts.WithTests, "with-tests", false, "Also build the crate's test binary")
	f.StringSliceVar(&opts.Deps, "deps", nil, "Labels of direct dependencies")
	f.BoolVar(&opts.GatherDeps, "gather-deps", false, "Aggregate native libraries from dependency metadata")
	f.StringVar(&opts.ToolchainConfig, "toolchain-config", "", "YAML file with toolchain-wide defaults")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts.Type = domain.ArtifactType(artifactType)
		opts.Deps = append(opts.Deps, args...)
		return c.app.Build(cmd.Context(), opts)
	}
}

// depsArgs accepts positional arguments only as further dependency labels,
// so "--deps //a:a //b:b" lists both labels.
func depsArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && !cmd.Flags().Changed("deps") {
		return fmt.Errorf("unexpected arguments %q: only --deps takes more than one value", args)
	}
	return nil
}
