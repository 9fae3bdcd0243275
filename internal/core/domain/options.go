package domain

import "go.trai.ch/zerr"

// BuildOptions carries everything needed to build a single target.
type BuildOptions struct {
	Type         ArtifactType
	Name         string
	Label        string
	OutDir       string
	GenDir       string
	RootOutDir   string
	RootGenDir   string
	CrateRoot    string
	Cargo        string
	Rustc        string
	TargetTriple string
	CMakeDir     string
	VendorDir    string
	SharedLibs   string
	Sysroot      string
	ClangPrefix  string
	Release      bool
	WithTests    bool
	GatherDeps   bool
	Deps         []string
}

// Validate checks the cross-field constraints that flag parsing cannot express.
func (o *BuildOptions) Validate() error {
	required := []struct {
		flag  string
		value string
	}{
		{"type", string(o.Type)},
		{"name", o.Name},
		{"label", o.Label},
		{"out-dir", o.OutDir},
		{"gen-dir", o.GenDir},
		{"root-out-dir", o.RootOutDir},
		{"root-gen-dir", o.RootGenDir},
		{"crate-root", o.CrateRoot},
		{"cargo", o.Cargo},
		{"rustc", o.Rustc},
		{"target-triple", o.TargetTriple},
		{"cmake-dir", o.CMakeDir},
		{"vendor-directory", o.VendorDir},
		{"shared-libs-root", o.SharedLibs},
	}
	for _, r := range required {
		if r.value == "" {
			return zerr.With(ErrMissingOption, "flag", "--"+r.flag)
		}
	}

	if _, err := ParseArtifactType(string(o.Type)); err != nil {
		return err
	}

	if (o.Sysroot == "") != (o.ClangPrefix == "") {
		return zerr.With(zerr.With(ErrIncompleteCrossCompile, "sysroot", o.Sysroot), "clang_prefix", o.ClangPrefix)
	}

	return nil
}

// CrossCompiling reports whether a sysroot-based linker configuration was requested.
func (o *BuildOptions) CrossCompiling() bool {
	return o.Sysroot != ""
}
