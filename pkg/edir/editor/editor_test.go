package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	tests := []struct {
		name       string
		configured string
		visual     string
		editor     string
		want       string
		fallback   bool
	}{
		{name: "configured wins", configured: "nano", visual: "vim", editor: "vi", want: "nano"},
		{name: "visual over editor", visual: "vim", editor: "emacs", want: "vim"},
		{name: "editor when no visual", editor: "emacs", want: "emacs"},
		{name: "default fallback", want: Default, fallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.editor)

			got, fellBack := Resolve(tt.configured)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fallback, fellBack)
		})
	}
}

func TestLaunch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing")
	require.NoError(t, os.WriteFile(path, []byte("0000    a\n"), 0o644))

	// "true" ignores its arguments and exits 0.
	assert.NoError(t, Launch("true", path))
}

func TestLaunchNonZeroExit(t *testing.T) {
	err := Launch("false", filepath.Join(t.TempDir(), "listing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with status")
}

func TestLaunchMissingBinary(t *testing.T) {
	err := Launch("definitely-not-an-editor-badf00d", filepath.Join(t.TempDir(), "listing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not exit")
}

func TestLaunchEmptyCommand(t *testing.T) {
	err := Launch("   ", "x")
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestLaunchSplitsArguments(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "touched")

	// The extra argument survives splitting; the listing path is
	// appended after it.
	require.NoError(t, Launch("touch "+marker, filepath.Join(dir, "listing")))

	_, err := os.Stat(marker)
	assert.NoError(t, err)
}
