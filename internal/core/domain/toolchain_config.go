package domain

// ToolchainConfig holds the toolchain-wide parameters shared by every target build.
// Empty fields leave the corresponding option untouched.
type ToolchainConfig struct {
	Cargo        string `yaml:"cargo"`
	Rustc        string `yaml:"rustc"`
	CMakeDir     string `yaml:"cmake_dir"`
	VendorDir    string `yaml:"vendor_directory"`
	SharedLibs   string `yaml:"shared_libs_root"`
	TargetTriple string `yaml:"target_triple"`
	Sysroot      string `yaml:"sysroot"`
	ClangPrefix  string `yaml:"clang_prefix"`
	RootOutDir   string `yaml:"root_out_dir"`
	RootGenDir   string `yaml:"root_gen_dir"`
}

// ApplyDefaults fills every empty option in opts from the config.
// Values already present in opts win.
func (c *ToolchainConfig) ApplyDefaults(opts *BuildOptions) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&opts.Cargo, c.Cargo)
	fill(&opts.Rustc, c.Rustc)
	fill(&opts.CMakeDir, c.CMakeDir)
	fill(&opts.VendorDir, c.VendorDir)
	fill(&opts.SharedLibs, c.SharedLibs)
	fill(&opts.TargetTriple, c.TargetTriple)
	fill(&opts.Sysroot, c.Sysroot)
	fill(&opts.ClangPrefix, c.ClangPrefix)
	fill(&opts.RootOutDir, c.RootOutDir)
	fill(&opts.RootGenDir, c.RootGenDir)
}
