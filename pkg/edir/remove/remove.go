// Package remove performs the actual removal of directory entries.
// The default backend deletes permanently; the trash backend moves
// entries to the system trash where one is available, falling back to
// permanent deletion when it is not.
package remove

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// commandTimeout is the maximum time to wait for trash helper commands.
const commandTimeout = 30 * time.Second

// Remover deletes a single entry. Remove handles non-directories;
// RemoveTree deletes a directory and everything under it.
type Remover interface {
	Remove(path string) error
	RemoveTree(path string) error
}

// Permanent deletes entries irrecoverably with plain filesystem calls.
type Permanent struct{}

// Remove deletes a single non-directory entry.
func (Permanent) Remove(path string) error {
	return os.Remove(path)
}

// RemoveTree deletes a directory and its whole subtree.
func (Permanent) RemoveTree(path string) error {
	return os.RemoveAll(path)
}

// Trash moves entries to the system trash.
// On macOS it asks Finder, which keeps "Put Back" working.
// On Linux it tries gio, then trash-cli.
// Anywhere else, or when no helper succeeds, it deletes permanently.
type Trash struct{}

// Remove moves a single entry to the trash.
func (Trash) Remove(path string) error {
	return trash(path)
}

// RemoveTree moves a directory to the trash. Trashing is already
// recursive, so this is the same operation.
func (Trash) RemoveTree(path string) error {
	return trash(path)
}

func trash(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %q: %w", path, err)
	}

	switch runtime.GOOS {
	case "darwin":
		return trashMacOS(absPath)
	case "linux":
		return trashLinux(absPath)
	default:
		return fallbackDelete(absPath)
	}
}

func trashMacOS(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %q`, path)
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return fallbackDelete(path)
	}
	return nil
}

func trashLinux(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if gioPath, err := exec.LookPath("gio"); err == nil {
		if err := exec.CommandContext(ctx, gioPath, "trash", path).Run(); err == nil {
			return nil
		}
	}
	if trashPath, err := exec.LookPath("trash-put"); err == nil {
		if err := exec.CommandContext(ctx, trashPath, path).Run(); err == nil {
			return nil
		}
	}
	return fallbackDelete(path)
}

// fallbackDelete permanently removes an entry when no trash is available.
func fallbackDelete(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete %q: %w", path, err)
	}
	return nil
}
