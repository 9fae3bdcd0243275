package ports

//go:generate mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks

// DepfileNormalizer rewrites toolchain depfiles into the outer graph's conventions.
type DepfileNormalizer interface {
	// Normalize rewrites the depfile at path in place so its target is relative to rootOutDir.
	Normalize(path, rootOutDir string) error
}

// ArtifactPublisher exposes generated binaries under stable names.
type ArtifactPublisher interface {
	// Link points linkPath at target, replacing a previous link.
	Link(target, linkPath string) error
}
