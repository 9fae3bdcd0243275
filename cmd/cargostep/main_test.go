package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cargostep/internal/adapters/telemetry"
	"go.trai.ch/cargostep/internal/app"
	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/cargostep/internal/core/ports/mocks"
	"go.trai.ch/cargostep/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

type fakes struct {
	manifest  *mocks.MockManifestReader
	vendor    *mocks.MockVendorConfigWriter
	toolchain *mocks.MockToolchain
	logger    *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, *fakes) {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fakes{
		manifest:  mocks.NewMockManifestReader(ctrl),
		vendor:    mocks.NewMockVendorConfigWriter(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	drv := driver.New(
		f.manifest,
		mocks.NewMockMetadataStore(ctrl),
		f.vendor,
		f.toolchain,
		mocks.NewMockBuildOutputParser(ctrl),
		mocks.NewMockDepfileNormalizer(ctrl),
		mocks.NewMockArtifactPublisher(ctrl),
		telemetry.NewNoOpTracer(),
		f.logger,
	)
	application := app.New(mocks.NewMockConfigLoader(ctrl), drv, f.logger)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: f.logger,
		}, func() {}, nil
	}, f
}

func binArgs(t *testing.T) []string {
	t.Helper()
	root := t.TempDir()
	return []string{
		"--type", "bin",
		"--name", "tool",
		"--label", "//src/tool",
		"--out-dir", filepath.Join(root, "out", "tool"),
		"--gen-dir", filepath.Join(root, "gen", "tool.rust"),
		"--root-out-dir", filepath.Join(root, "out"),
		"--root-gen-dir", filepath.Join(root, "gen"),
		"--crate-root", filepath.Join(root, "src", "tool"),
		"--cargo", "/bin/cargo",
		"--rustc", "/bin/rustc",
		"--target-triple", "x86_64-fuchsia",
		"--cmake-dir", "/cmake/bin",
		"--vendor-directory", "/vendor",
		"--shared-libs-root", "/shared",
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "cargostep version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ToolchainExitCode verifies that a failed toolchain run exits with the toolchain's code.
func TestRun_ToolchainExitCode(t *testing.T) {
	provider, f := newProvider(t)

	f.manifest.EXPECT().PackageName(gomock.Any()).Return("tool", nil)
	f.vendor.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
	f.toolchain.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.InvocationResult{
		ExitCode: 101,
		Stdout:   []byte("error: could not compile `tool`\n"),
	}, nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), binArgs(t), stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 101, exitCode)
	assert.Equal(t, "error: could not compile `tool`\n", stdout.String())
}

// TestRun_InternalError verifies that internal errors are logged and exit with 1.
func TestRun_InternalError(t *testing.T) {
	provider, f := newProvider(t)

	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrMissingOption.Error())
	})

	exitCode := run(context.Background(), []string{"--type", "lib"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
