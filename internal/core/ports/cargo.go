package ports

import "go.trai.ch/cargostep/internal/core/domain"

// ManifestReader extracts information from a crate manifest.
//
//go:generate mockgen -source=cargo.go -destination=mocks/mock_cargo.go -package=mocks
type ManifestReader interface {
	// PackageName returns package.name from the Cargo.toml in crateRoot.
	PackageName(crateRoot string) (string, error)
}

// VendorConfigWriter materializes the per-target cargo configuration.
type VendorConfigWriter interface {
	// Write replaces the file at path with the configuration, creating parent directories.
	Write(path string, cfg domain.VendorConfig) error
}

// BuildOutputParser interprets the toolchain's structured output.
type BuildOutputParser interface {
	// TestExecutable returns the path of the first test binary reported in output.
	// The boolean is false when no test artifact was reported.
	TestExecutable(output []byte) (string, bool, error)
}
