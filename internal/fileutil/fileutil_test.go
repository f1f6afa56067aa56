package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liantichess/variants/internal/fileutil"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "variants.ini")
		require.NoError(t, fileutil.WriteFileAtomic(path, []byte("[x:giveaway]\n"), 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[x:giveaway]\n", string(got))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deep", "variants.ini")
		require.NoError(t, fileutil.WriteFileAtomic(path, []byte("data"), 0644))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "variants.ini")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
		require.NoError(t, fileutil.WriteFileAtomic(path, []byte("new"), 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, fileutil.WriteFileAtomic(filepath.Join(dir, "variants.ini"), []byte("data"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestBackup(t *testing.T) {
	t.Parallel()

	t.Run("copies existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "variants.ini")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0600))

		dst, err := fileutil.Backup(path)
		require.NoError(t, err)
		assert.Equal(t, path+fileutil.BackupSuffix, dst)

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "original", string(got))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		t.Parallel()

		dst, err := fileutil.Backup(filepath.Join(t.TempDir(), "missing.ini"))
		require.NoError(t, err)
		assert.Empty(t, dst)
	})

	t.Run("rejects directories", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.Backup(t.TempDir())
		assert.Error(t, err)
	})
}
