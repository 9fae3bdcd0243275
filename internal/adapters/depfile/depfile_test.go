package depfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargostep/internal/adapters/depfile"
	"go.trai.ch/cargostep/internal/core/domain"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name    string
		content string
		base    string
		want    string
	}{
		{
			name:    "target directly under base",
			content: "/abs/out/target.rlib: src/a.rs src/b.rs",
			base:    "/abs/out",
			want:    "target.rlib: src/a.rs src/b.rs",
		},
		{
			name:    "nested target keeps trailing newline",
			content: "/abs/out/x86_64-fuchsia/debug/libfoo.rlib: /src/lib.rs /src/util.rs\n",
			base:    "/abs/out",
			want:    "x86_64-fuchsia/debug/libfoo.rlib: /src/lib.rs /src/util.rs\n",
		},
		{
			name:    "target outside base",
			content: "/abs/other/foo: a.rs",
			base:    "/abs/out",
			want:    "../other/foo: a.rs",
		},
		{
			name:    "only the first separator splits",
			content: "/abs/out/foo: a.rs\n/abs/out/foo.d: a.rs\n",
			base:    "/abs/out",
			want:    "foo: a.rs\n/abs/out/foo.d: a.rs\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := depfile.Rewrite([]byte(tt.content), tt.base)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), string(got))
		})
	}
}

func TestRewrite_MissingSeparator(t *testing.T) {
	_, err := depfile.Rewrite([]byte("/abs/out/target.rlib"), "/abs/out")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDepfileFormat.Error())
}

func TestNormalizer_Normalize(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "x86_64-fuchsia", "debug", "libfoo.d")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))

	target := filepath.Join(root, "x86_64-fuchsia", "debug", "libfoo.rlib")
	require.NoError(t, os.WriteFile(path, []byte(target+": src/lib.rs\n"), 0o600))

	require.NoError(t, depfile.NewNormalizer().Normalize(path, root))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("x86_64-fuchsia", "debug", "libfoo.rlib")+": src/lib.rs\n", string(got))
}

func TestNormalizer_MissingFile(t *testing.T) {
	err := depfile.NewNormalizer().Normalize(filepath.Join(t.TempDir(), "absent.d"), "/out")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDepfileReadFailed.Error())
}

func TestNormalizer_MalformedLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.d")
	require.NoError(t, os.WriteFile(path, []byte("no separator here"), 0o600))

	err := depfile.NewNormalizer().Normalize(path, "/out")
	assert.ErrorContains(t, err, domain.ErrDepfileFormat.Error())

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "no separator here", string(got))
}
