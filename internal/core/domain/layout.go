package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// InfoFileSuffix is appended to a target's short name to form its metadata file name.
	InfoFileSuffix = ".info.toml"

	// InfoTempSuffix is appended to a metadata path while it is being written.
	InfoTempSuffix = ".TMP"

	// GenDirSuffix is appended to a target's short name to form its generated-output directory.
	GenDirSuffix = ".rust"

	// ManifestFileName is the crate manifest read from the crate root.
	ManifestFileName = "Cargo.toml"

	// LockFileName is the lockfile cargo regenerates on every build.
	LockFileName = "Cargo.lock"

	// CargoConfigDirName is the directory holding the generated cargo configuration.
	CargoConfigDirName = ".cargo"

	// CargoConfigFileName is the generated cargo configuration file.
	CargoConfigFileName = "config"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// InfoPath returns the metadata file path for the target named by label inside genDir.
func InfoPath(genDir string, target Target) string {
	return filepath.Join(genDir, target.Name+InfoFileSuffix)
}

// DependencyInfoPath returns where a dependency publishes its metadata under the root gen dir.
// It mirrors the outer graph's layout: <root-gen-dir>/<path>/<name>.rust/<name>.info.toml.
func DependencyInfoPath(rootGenDir string, target Target) string {
	genDir := filepath.Join(rootGenDir, filepath.FromSlash(target.Path), target.Name+GenDirSuffix)
	return InfoPath(genDir, target)
}

// CargoConfigPath returns the location of the generated cargo configuration.
func CargoConfigPath(genDir string) string {
	return filepath.Join(genDir, CargoConfigDirName, CargoConfigFileName)
}

// LockFilePath returns the location of the stale lockfile cleared before each build.
func LockFilePath(genDir string) string {
	return filepath.Join(genDir, LockFileName)
}

// ManifestPath returns the location of the crate manifest.
func ManifestPath(crateRoot string) string {
	return filepath.Join(crateRoot, ManifestFileName)
}

// DepfilePath returns the depfile cargo writes for the given artifact.
func DepfilePath(outDir, triple string, release bool, kind ArtifactType, name string) string {
	profile := "debug"
	if release {
		profile = "release"
	}
	output := name
	if kind == ArtifactLib {
		output = "lib" + name
	}
	return filepath.Join(outDir, triple, profile, output+".d")
}

// TestLinkPath returns the stable location of the published test binary link.
func TestLinkPath(outDir, name string, kind ArtifactType) string {
	return filepath.Join(outDir, fmt.Sprintf("%s-%s-test", name, kind))
}

// CargoTargetEnvPrefix returns the prefix cargo uses for triple-scoped environment variables.
func CargoTargetEnvPrefix(triple string) string {
	return "CARGO_TARGET_" + strings.ToUpper(strings.ReplaceAll(triple, "-", "_"))
}
