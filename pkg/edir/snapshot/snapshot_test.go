package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTake(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	snap, err := Take(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, snap.Dir)
	require.Equal(t, 3, snap.Len())

	names := make(map[string]bool)
	for i, e := range snap.Entries {
		// Indices are dense and assigned in enumeration order.
		assert.Equal(t, i, e.Index)
		// Entries start at the default action: absence means deletion.
		assert.Equal(t, Delete, e.Action.Kind)
		names[e.Name] = true
	}
	assert.True(t, names["a.txt"])
	assert.True(t, names["b.txt"])
	assert.True(t, names["sub"])
}

func TestTakeEmptyDir(t *testing.T) {
	snap, err := Take(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Len())
}

func TestTakeExcludes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("k"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stale-listing"), []byte("0000    x\n"), 0o644))

	snap, err := Take(dir, ".stale-listing")
	require.NoError(t, err)

	require.Equal(t, 1, snap.Len())
	assert.Equal(t, "keep.txt", snap.Entries[0].Name)
	assert.Equal(t, 0, snap.Entries[0].Index)
}

func TestTakeMissingDir(t *testing.T) {
	_, err := Take(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestTakeNotADir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Take(file)
	assert.Error(t, err)
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "delete", Delete.String())
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "rename", Rename.String())
	assert.Equal(t, "unknown", ActionKind(99).String())
}
