package publish_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargostep/internal/adapters/publish"
	"go.trai.ch/cargostep/internal/core/domain"
)

func TestSymlinkPublisher_Link(t *testing.T) {
	outDir := t.TempDir()
	binary := filepath.Join(outDir, "x86_64-fuchsia", "debug", "foo-3a9c1f")
	linkPath := domain.TestLinkPath(outDir, "foo", domain.ArtifactBin)

	require.NoError(t, publish.NewSymlinkPublisher().Link(binary, linkPath))

	got, err := os.Readlink(linkPath)
	require.NoError(t, err)
	assert.Equal(t, binary, got)
}

func TestSymlinkPublisher_ReplacesExistingLink(t *testing.T) {
	outDir := t.TempDir()
	linkPath := domain.TestLinkPath(outDir, "foo", domain.ArtifactLib)
	require.NoError(t, os.Symlink("/stale/foo-0000", linkPath))

	p := publish.NewSymlinkPublisher()
	require.NoError(t, p.Link("/fresh/foo-1111", linkPath))

	got, err := os.Readlink(linkPath)
	require.NoError(t, err)
	assert.Equal(t, "/fresh/foo-1111", got)
}

func TestSymlinkPublisher_RefusesRegularFile(t *testing.T) {
	outDir := t.TempDir()
	linkPath := domain.TestLinkPath(outDir, "foo", domain.ArtifactBin)
	require.NoError(t, os.WriteFile(linkPath, []byte("not a link"), 0o600))

	err := publish.NewSymlinkPublisher().Link("/fresh/foo-1111", linkPath)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTestLinkFailed.Error())

	data, readErr := os.ReadFile(linkPath)
	require.NoError(t, readErr)
	assert.Equal(t, "not a link", string(data))
}
