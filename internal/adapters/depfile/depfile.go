// Package depfile rewrites make-style depfiles emitted by the toolchain.
package depfile

import (
	"bytes"
	"os"
	"path/filepath"

	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/zerr"
)

var separator = []byte(": ")

// Normalizer implements ports.DepfileNormalizer.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize rewrites the depfile's target, the text before the first ": ",
// as a path relative to rootOutDir. The dependency list is kept verbatim.
func (n *Normalizer) Normalize(path, rootOutDir string) error {
	//nolint:gosec // Path is derived from the out dir supplied by the outer graph
	content, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDepfileReadFailed.Error()), "path", path)
	}

	rewritten, err := Rewrite(content, rootOutDir)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDepfileReadFailed.Error()), "path", path)
	}

	if err := os.WriteFile(path, rewritten, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDepfileReadFailed.Error()), "path", path)
	}

	return nil
}

// Rewrite returns content with its target made relative to base.
func Rewrite(content []byte, base string) ([]byte, error) {
	target, deps, ok := bytes.Cut(content, separator)
	if !ok {
		return nil, domain.ErrDepfileFormat
	}

	absTarget, err := filepath.Abs(string(target))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDepfileReadFailed.Error())
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDepfileReadFailed.Error())
	}

	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDepfileReadFailed.Error()), "target", string(target))
	}

	out := make([]byte, 0, len(rel)+len(separator)+len(deps))
	out = append(out, rel...)
	out = append(out, separator...)
	return append(out, deps...), nil
}
