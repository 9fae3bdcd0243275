// Package metadata implements the file-based dependency metadata store.
package metadata

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.MetadataStore with one TOML file per target.
type Store struct {
	rename func(oldPath, newPath string) error
}

// NewStore creates a new metadata Store.
func NewStore() *Store {
	return &Store{rename: os.Rename}
}

// Read loads the metadata file at path.
func (s *Store) Read(path string) (*domain.DependencyInfo, error) {
	//nolint:gosec // Path is derived from build labels supplied by the outer graph
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
	}

	var info domain.DependencyInfo
	if err := toml.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataParseFailed.Error()), "path", path)
	}

	return &info, nil
}

// Publish writes the metadata for target into genDir.
//
// A stale file at the final path is removed first so a failed run never leaves
// outdated metadata behind. The record is written to a temporary sibling and
// renamed into place.
func (s *Store) Publish(genDir string, target domain.Target, info domain.DependencyInfo) error {
	if info.NativeLibs == nil {
		info.NativeLibs = []string{}
	}

	infoPath := domain.InfoPath(genDir, target)
	fail := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", infoPath)
	}

	if err := os.Remove(infoPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fail(err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(info); err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(infoPath), domain.DirPerm); err != nil {
		return fail(err)
	}

	tmpPath := infoPath + domain.InfoTempSuffix
	if err := s.writeAndRename(tmpPath, infoPath, buf.Bytes()); err != nil {
		_ = os.Remove(tmpPath)
		return fail(err)
	}

	return nil
}

func (s *Store) writeAndRename(tmpPath, finalPath string, data []byte) error {
	//nolint:gosec // Path is derived from build labels supplied by the outer graph
	if err := os.WriteFile(tmpPath, data, domain.FilePerm); err != nil {
		return err
	}
	return s.rename(tmpPath, finalPath)
}
