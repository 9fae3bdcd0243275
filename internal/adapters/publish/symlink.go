// Package publish exposes generated artifacts under the stable names the outer graph expects.
package publish

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/zerr"
)

// SymlinkPublisher implements ports.ArtifactPublisher with symbolic links.
type SymlinkPublisher struct{}

// NewSymlinkPublisher creates a new SymlinkPublisher.
func NewSymlinkPublisher() *SymlinkPublisher {
	return &SymlinkPublisher{}
}

// Link points linkPath at target. An existing symlink at linkPath is replaced;
// any other file there is left alone and reported as an error.
func (p *SymlinkPublisher) Link(target, linkPath string) error {
	fail := func(err error) error {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrTestLinkFailed.Error()), "link", linkPath), "target", target)
	}

	info, err := os.Lstat(linkPath)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		if err := os.Remove(linkPath); err != nil {
			return fail(err)
		}
	case err == nil:
		return fail(fs.ErrExist)
	case !errors.Is(err, fs.ErrNotExist):
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(linkPath), domain.DirPerm); err != nil {
		return fail(err)
	}

	if err := os.Symlink(target, linkPath); err != nil {
		return fail(err)
	}

	return nil
}
