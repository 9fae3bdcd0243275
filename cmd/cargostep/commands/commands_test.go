package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargostep/cmd/cargostep/commands"
	"go.trai.ch/cargostep/internal/app"
	"go.trai.ch/cargostep/internal/build"
	"go.trai.ch/cargostep/internal/core/domain"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

type recordingLogs struct {
	verbose bool
	json    bool
}

func (r *recordingLogs) SetVerbose(enable bool) { r.verbose = enable }
func (r *recordingLogs) SetJSON(enable bool)    { r.json = enable }

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"--type", "lib",
			"--name", "foo",
			"--out-dir", "/out/foo",
			"--gen-dir", "/out/gen/foo.rust",
			"--root-out-dir", "/out",
			"--root-gen-dir", "/out/gen",
			"--crate-root", "/src/foo",
			"--cargo", "/bin/cargo",
			"--rustc", "/bin/rustc",
			"--target-triple", "x86_64-fuchsia",
			"--label", "//src/foo:foo",
			"--cmake-dir", "/cmake/bin",
			"--vendor-directory", "/vendor",
			"--shared-libs-root", "/shared",
			"--sysroot", "/sysroot",
			"--clang_prefix", "/clang/bin",
			"--release",
			"--with-tests",
			"--deps", "//a:a,//b",
			"--deps", "//c",
			"--gather-deps",
			"--toolchain-config", "toolchain.yaml",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)

		assert.Equal(t, app.BuildOptions{
			BuildOptions: domain.BuildOptions{
				Type:         domain.ArtifactLib,
				Name:         "foo",
				Label:        "//src/foo:foo",
				OutDir:       "/out/foo",
				GenDir:       "/out/gen/foo.rust",
				RootOutDir:   "/out",
				RootGenDir:   "/out/gen",
				CrateRoot:    "/src/foo",
				Cargo:        "/bin/cargo",
				Rustc:        "/bin/rustc",
				TargetTriple: "x86_64-fuchsia",
				CMakeDir:     "/cmake/bin",
				VendorDir:    "/vendor",
				SharedLibs:   "/shared",
				Sysroot:      "/sysroot",
				ClangPrefix:  "/clang/bin",
				Release:      true,
				WithTests:    true,
				GatherDeps:   true,
				Deps:         []string{"//a:a", "//b", "//c"},
			},
			ToolchainConfig: "toolchain.yaml",
		}, captured)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"--type", "bin"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"stray", "args"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("collects space separated deps", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"--type", "lib", "--deps", "//a:a", "//b:b", "--name", "foo", "//c"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"//a:a", "//b:b", "//c"}, captured.Deps)
		assert.Equal(t, "foo", captured.Name)
	})

	t.Run("applies log settings", func(t *testing.T) {
		logs := &recordingLogs{}
		cli := commands.New(&mockApp{}, logs)
		cli.SetArgs([]string{"--verbose", "--log-json"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, logs.verbose)
		assert.True(t, logs.json)
	})
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"-v"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "cargostep version "+build.Version)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "cargostep version "+build.Version)
}
