package domain

// DependencyInfo is the metadata a library target publishes for its dependents.
type DependencyInfo struct {
	// Name is the crate's package name from its manifest.
	Name string `toml:"name"`
	// NativeLibs are the native libraries dependents must link against.
	NativeLibs []string `toml:"native_libs"`
	// BasePath is the target's generated-output directory.
	BasePath string `toml:"base_path"`
	// HasGeneratedCode marks crates whose sources are partly generated into BasePath.
	HasGeneratedCode bool `toml:"has_generated_code"`
}
