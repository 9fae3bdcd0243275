package ports

import "go.trai.ch/cargostep/internal/core/domain"

// MetadataStore reads and publishes per-target dependency metadata files.
//
//go:generate mockgen -source=metadata_store.go -destination=mocks/mock_metadata_store.go -package=mocks
type MetadataStore interface {
	// Read loads the metadata file at path.
	// Returns nil, nil if the file does not exist.
	Read(path string) (*domain.DependencyInfo, error)

	// Publish atomically writes the metadata for target into genDir.
	// Readers never observe a partially written file.
	Publish(genDir string, target domain.Target, info domain.DependencyInfo) error
}
