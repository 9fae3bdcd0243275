// Package cargo adapts the cargo toolchain's file formats: crate manifests,
// the per-target configuration file and the JSON message stream.
package cargo

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/zerr"
)

type manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

// ManifestReader implements ports.ManifestReader.
type ManifestReader struct{}

// NewManifestReader creates a new ManifestReader.
func NewManifestReader() *ManifestReader {
	return &ManifestReader{}
}

// PackageName returns package.name from <crateRoot>/Cargo.toml.
func (r *ManifestReader) PackageName(crateRoot string) (string, error) {
	path := domain.ManifestPath(crateRoot)

	//nolint:gosec // Path is the crate root supplied by the outer graph
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	if m.Package.Name == "" {
		return "", zerr.With(domain.ErrManifestMissingName, "path", path)
	}

	return m.Package.Name, nil
}
