package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrMalformedLabel is returned when a build label does not start with the graph-root marker.
	ErrMalformedLabel = zerr.New("malformed build label")

	// ErrManifestReadFailed is returned when the crate's own Cargo.toml cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when the crate's own Cargo.toml cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrManifestMissingName is returned when the manifest does not declare package.name.
	ErrManifestMissingName = zerr.New("package manifest does not declare a package name")

	// ErrPublishFailed is returned when a metadata file cannot be atomically published.
	ErrPublishFailed = zerr.New("failed to publish dependency metadata")

	// ErrMetadataReadFailed is returned when an existing metadata file cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read dependency metadata")

	// ErrMetadataParseFailed is returned when an existing metadata file is not a valid record.
	ErrMetadataParseFailed = zerr.New("failed to parse dependency metadata")

	// ErrVendorConfigWriteFailed is returned when the cargo configuration cannot be written.
	ErrVendorConfigWriteFailed = zerr.New("failed to write vendor configuration")

	// ErrLockfileCleanupFailed is returned when a stale Cargo.lock cannot be removed.
	ErrLockfileCleanupFailed = zerr.New("failed to remove stale lockfile")

	// ErrToolchainStartFailed is returned when the toolchain process cannot be started at all.
	ErrToolchainStartFailed = zerr.New("failed to start toolchain")

	// ErrToolchainFailed is returned when the toolchain exits with a non-zero code.
	ErrToolchainFailed = zerr.New("toolchain failed")

	// ErrToolchainContractViolation is returned when the toolchain reported success but its
	// structured output does not describe the expected artifact.
	ErrToolchainContractViolation = zerr.New("toolchain contract violation")

	// ErrDepfileReadFailed is returned when a depfile cannot be read or rewritten.
	ErrDepfileReadFailed = zerr.New("failed to rewrite depfile")

	// ErrDepfileFormat is returned when a depfile has no "target: sources" separator.
	ErrDepfileFormat = zerr.New("depfile is missing the target separator")

	// ErrTestLinkFailed is returned when the stable test binary link cannot be created.
	ErrTestLinkFailed = zerr.New("failed to publish test binary link")

	// ErrInvalidArtifactType is returned for artifact types other than lib and bin.
	ErrInvalidArtifactType = zerr.New("invalid artifact type, expected 'lib' or 'bin'")

	// ErrMissingOption is returned when a required driver option has no value.
	ErrMissingOption = zerr.New("missing required option")

	// ErrIncompleteCrossCompile is returned when only one of sysroot and clang prefix is set.
	ErrIncompleteCrossCompile = zerr.New("sysroot and clang prefix must be given together")

	// ErrConfigReadFailed is returned when the toolchain config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read toolchain config file")

	// ErrConfigParseFailed is returned when the toolchain config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse toolchain config file")
)

// ToolchainFailure reports a toolchain run that exited with a non-zero code.
// The driver exits with the same code.
type ToolchainFailure struct {
	Phase    Phase
	ExitCode int
}

// Error implements the error interface.
func (f *ToolchainFailure) Error() string {
	return fmt.Sprintf("%s: %s exited with code %d", ErrToolchainFailed.Error(), f.Phase, f.ExitCode)
}

// Unwrap allows errors.Is(err, ErrToolchainFailed).
func (f *ToolchainFailure) Unwrap() error {
	return ErrToolchainFailed
}
