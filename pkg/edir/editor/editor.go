// Package editor resolves which text editor to use and runs it as a
// blocking child process on the editable listing.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Default is used when no editor is configured and neither VISUAL nor
// EDITOR is set.
const Default = "vi"

// ErrNoCommand indicates an empty editor command after resolution.
var ErrNoCommand = errors.New("no editor command")

// Resolve picks the editor command. Order of precedence: the configured
// value, $VISUAL, $EDITOR, then the built-in default. The second return
// reports whether the fallback was used, so the caller can warn.
func Resolve(configured string) (string, bool) {
	if configured != "" {
		return configured, false
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v, false
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v, false
	}
	return Default, true
}

// Launch runs the editor on path and blocks until it exits. The editor
// inherits the terminal. The command string is split on whitespace so
// values like "code --wait" work. A non-zero exit status and a failure
// to start are both fatal to the run: an edit session that did not end
// cleanly cannot vouch for the listing's contents.
func Launch(command, path string) error {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return ErrNoCommand
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("editor %q exited with status %d", argv[0], exitErr.ExitCode())
	}
	return fmt.Errorf("editor %q did not exit: %w", argv[0], err)
}
