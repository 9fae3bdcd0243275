package domain

// CratesIORegistry is the upstream registry replaced by the vendored sources.
const CratesIORegistry = "https://github.com/rust-lang/crates.io-index"

// VendoredSourcesName names the replacement source in the generated cargo configuration.
const VendoredSourcesName = "vendored-sources"

// VendorConfig describes the per-target cargo configuration.
type VendorConfig struct {
	VendorDir      string
	TargetTriple   string
	SharedLibsRoot string
	NativeLibs     []string
}
