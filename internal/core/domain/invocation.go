package domain

import (
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// ArtifactType is the kind of crate output being built.
type ArtifactType string

const (
	// ArtifactLib is a library crate, type-checked only.
	ArtifactLib ArtifactType = "lib"
	// ArtifactBin is a binary crate, fully built.
	ArtifactBin ArtifactType = "bin"
)

// ParseArtifactType validates the value of the --type option.
func ParseArtifactType(s string) (ArtifactType, error) {
	switch ArtifactType(s) {
	case ArtifactLib, ArtifactBin:
		return ArtifactType(s), nil
	default:
		return "", zerr.With(ErrInvalidArtifactType, "type", s)
	}
}

// Invocation is a single toolchain run.
type Invocation struct {
	// Args is the full argv, starting with the toolchain executable.
	Args []string
	// Env holds variables layered over the inherited process environment.
	Env map[string]string
	// PathAppend is appended to the inherited PATH when non-empty.
	PathAppend string
	// Dir is the working directory.
	Dir string
}

// ID returns a stable identifier for the invocation derived from its argv,
// environment overlay and working directory.
func (inv *Invocation) ID() string {
	d := xxhash.New()
	for _, arg := range inv.Args {
		_, _ = d.WriteString(arg)
		_, _ = d.Write([]byte{0})
	}
	for _, k := range slices.Sorted(maps.Keys(inv.Env)) {
		_, _ = d.WriteString(k)
		_, _ = d.Write([]byte{'='})
		_, _ = d.WriteString(inv.Env[k])
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.WriteString(inv.PathAppend)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(inv.Dir)
	return strconv.FormatUint(d.Sum64(), 16)
}

// WithoutLastArg returns a copy of the invocation with its final argument dropped.
func (inv *Invocation) WithoutLastArg() *Invocation {
	cp := *inv
	if len(inv.Args) > 0 {
		cp.Args = slices.Clone(inv.Args[:len(inv.Args)-1])
	}
	return &cp
}

// InvocationResult is the captured outcome of an Invocation.
type InvocationResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Succeeded reports whether the toolchain exited with code zero.
func (r *InvocationResult) Succeeded() bool {
	return r.ExitCode == 0
}

// Transcript returns stdout followed by stderr, as printed on failure.
func (r *InvocationResult) Transcript() []byte {
	out := make([]byte, 0, len(r.Stdout)+len(r.Stderr))
	out = append(out, r.Stdout...)
	return append(out, r.Stderr...)
}
