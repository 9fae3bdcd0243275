package driver

import (
	"path/filepath"
	"slices"

	"go.trai.ch/cargostep/internal/core/domain"
)

// BuildInvocation assembles the cargo call for the main build of opts.
// Libraries are only type-checked; binaries are fully built.
func BuildInvocation(opts *domain.BuildOptions) *domain.Invocation {
	verb := "build"
	if opts.Type == domain.ArtifactLib {
		verb = "check"
	}

	args := []string{opts.Cargo, verb, "--target=" + opts.TargetTriple, "--verbose"}
	if opts.Release {
		args = append(args, "--release")
	}
	if opts.Type == domain.ArtifactLib {
		args = append(args, "--lib")
	} else {
		args = append(args, "--bin", opts.Name)
	}

	return &domain.Invocation{
		Args:       args,
		Env:        Environment(opts),
		PathAppend: opts.CMakeDir,
		Dir:        opts.CrateRoot,
	}
}

// TestInvocation derives the no-run test build from the main build.
// The message format flag is always last so it can be dropped for a readable rerun.
func TestInvocation(build *domain.Invocation) *domain.Invocation {
	args := slices.Clone(build.Args)
	args[1] = "test"
	args = append(args, "--no-run", "--message-format=json")

	inv := *build
	inv.Args = args
	return &inv
}

// Environment returns the variables layered over the inherited environment.
func Environment(opts *domain.BuildOptions) map[string]string {
	env := map[string]string{
		"CARGO_TARGET_DIR": opts.OutDir,
		"RUSTC":            opts.Rustc,
		"RUST_BACKTRACE":   "1",
		"FUCHSIA_GEN_ROOT": opts.RootGenDir,
	}

	if opts.CrossCompiling() {
		prefix := domain.CargoTargetEnvPrefix(opts.TargetTriple)
		env[prefix+"_LINKER"] = filepath.Join(opts.ClangPrefix, "clang")
		env[prefix+"_RUSTFLAGS"] = "-Clink-arg=--target=" + opts.TargetTriple +
			" -Clink-arg=--sysroot=" + opts.Sysroot
	}

	return env
}
