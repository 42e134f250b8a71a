package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grind/internal/adapters/fs"
)

func TestDigest_Stable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "artifact")
	require.NoError(t, os.WriteFile(path, []byte("binary bytes"), 0o600))

	d1, err := fs.Digest(path)
	require.NoError(t, err)
	d2, err := fs.Digest(path)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 16)
}

func TestDigest_ChangesWithContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "artifact")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	d1, err := fs.Digest(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	d2, err := fs.Digest(path)
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestDigest_MissingFile(t *testing.T) {
	_, err := fs.Digest(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
