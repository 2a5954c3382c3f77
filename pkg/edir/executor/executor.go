// Package executor walks a resolved snapshot in order and applies each
// entry's action to the filesystem, honoring the dry-run, force,
// interactive, and verbose policy flags. Per-entry failures are recorded
// and reported but never stop the batch: every entry gets one attempt.
package executor

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jhenriksen/edir/pkg/edir/logging"
	"github.com/jhenriksen/edir/pkg/edir/output"
	"github.com/jhenriksen/edir/pkg/edir/remove"
	"github.com/jhenriksen/edir/pkg/edir/snapshot"
)

var logger = logging.Get("executor")

// EntryError records a filesystem failure attributed to one entry.
type EntryError struct {
	Op   string
	Name string
	Err  error
}

// Error returns the operation, entry name, and underlying cause.
func (e *EntryError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// RenameOp is one applied rename.
type RenameOp struct {
	From string
	To   string
}

// DeleteOp is one applied deletion.
type DeleteOp struct {
	Name  string
	IsDir bool
}

// Result aggregates what one run did (or, in dry-run mode, would do).
type Result struct {
	Renames  []RenameOp
	Deletes  []DeleteOp
	Kept     int
	Skipped  int
	Failures []EntryError
}

// Failed reports whether any entry's operation failed.
func (r *Result) Failed() bool {
	return len(r.Failures) > 0
}

// entryKind is the coarse classification used to pick the removal
// operation. Anything that is not a directory, regular file, or named
// pipe is never mutated implicitly.
type entryKind int

const (
	kindFile entryKind = iota
	kindDir
	kindOther
)

func classify(mode fs.FileMode) entryKind {
	switch {
	case mode.IsDir():
		return kindDir
	case mode.IsRegular(), mode&fs.ModeNamedPipe != 0:
		return kindFile
	default:
		return kindOther
	}
}

// Executor applies resolved actions. The zero value plus a Policy is
// usable: streams default to the standard ones and removal defaults to
// permanent deletion.
type Executor struct {
	Policy Policy

	// In supplies confirmation answers. Defaults to os.Stdin.
	In io.Reader

	// Out receives prompts and action reporting. Defaults to os.Stdout.
	Out io.Writer

	// Errout receives per-entry failure lines. Defaults to os.Stderr.
	Errout io.Writer

	// Remover performs deletions. Defaults to remove.Permanent.
	Remover remove.Remover

	in  *bufio.Reader
	out io.Writer
	err io.Writer
	rm  remove.Remover
	pol Policy
	res Result
}

// Run applies every entry's action in snapshot order and returns the
// aggregated result. Filesystem failures are attributed to their entry
// and never abort the batch; structural problems were all caught before
// this point.
func (x *Executor) Run(snap *snapshot.Snapshot) Result {
	x.pol = x.Policy.Normalize()
	x.res = Result{}

	x.out = x.Out
	if x.out == nil {
		x.out = os.Stdout
	}
	x.err = x.Errout
	if x.err == nil {
		x.err = os.Stderr
	}
	in := x.In
	if in == nil {
		in = os.Stdin
	}
	x.in = bufio.NewReader(in)
	x.rm = x.Remover
	if x.rm == nil {
		x.rm = remove.Permanent{}
	}

	if x.pol.DryRun {
		fmt.Fprintln(x.out, "dry run: no files will be modified")
	}

	for i := range snap.Entries {
		x.apply(snap.Dir, &snap.Entries[i])
	}

	logger.Debug("run finished",
		"renamed", len(x.res.Renames), "deleted", len(x.res.Deletes),
		"kept", x.res.Kept, "skipped", x.res.Skipped,
		"failures", len(x.res.Failures), "dry_run", x.pol.DryRun)
	return x.res
}

func (x *Executor) apply(dir string, e *snapshot.Entry) {
	path := filepath.Join(dir, e.Name)
	info, err := os.Lstat(path)
	if err != nil {
		x.fail("stat", e.Name, err)
		return
	}
	kind := classify(info.Mode())

	if e.Action.Kind == snapshot.Keep {
		x.res.Kept++
		return
	}
	if kind == kindOther {
		fmt.Fprintf(x.out, "skipping %q: unsupported entry type\n", e.Name)
		x.res.Skipped++
		return
	}

	switch e.Action.Kind {
	case snapshot.Rename:
		x.rename(dir, e, path)
	case snapshot.Delete:
		x.delete(e, path, kind)
	}
}

func (x *Executor) rename(dir string, e *snapshot.Entry, path string) {
	newName := e.Action.NewName
	if x.pol.Interactive && !x.confirm("rename %q to %q", e.Name, newName) {
		x.res.Skipped++
		return
	}
	if x.pol.Verbose {
		if x.pol.DryRun {
			fmt.Fprintf(x.out, "would rename %q -> %q\n", e.Name, newName)
		} else {
			fmt.Fprintf(x.out, "renaming %q -> %q\n", e.Name, newName)
		}
	}
	if !x.pol.DryRun {
		if err := os.Rename(path, filepath.Join(dir, newName)); err != nil {
			x.fail("rename", e.Name, err)
			return
		}
		logger.Debug("renamed", "from", e.Name, "to", newName)
	}
	x.res.Renames = append(x.res.Renames, RenameOp{From: e.Name, To: newName})
}

func (x *Executor) delete(e *snapshot.Entry, path string, kind entryKind) {
	if x.pol.Interactive && !x.confirm("delete %q", e.Name) {
		x.res.Skipped++
		return
	}

	// Directories take an extra confirmation even outside interactive
	// mode; only force skips it.
	if kind == kindDir && !x.pol.Force {
		if !x.confirm("recursively delete directory %q%s", e.Name, describeSubtree(path)) {
			x.res.Skipped++
			return
		}
	}

	if x.pol.Verbose {
		if x.pol.DryRun {
			fmt.Fprintf(x.out, "would delete %q\n", e.Name)
		} else {
			fmt.Fprintf(x.out, "deleting %q\n", e.Name)
		}
	}
	if !x.pol.DryRun {
		var err error
		if kind == kindDir {
			err = x.rm.RemoveTree(path)
		} else {
			err = x.rm.Remove(path)
		}
		if err != nil {
			x.fail("delete", e.Name, err)
			return
		}
		logger.Debug("deleted", "name", e.Name, "dir", kind == kindDir)
	}
	x.res.Deletes = append(x.res.Deletes, DeleteOp{Name: e.Name, IsDir: kind == kindDir})
}

// describeSubtree annotates the directory prompt with what is at stake.
// Best effort: an unreadable subtree just gets no annotation.
func describeSubtree(path string) string {
	st, err := subtreeStats(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (%d entries, %s)", st.entries, humanize.IBytes(uint64(st.bytes)))
}

// confirm asks a yes/no question and returns true only on an explicit
// yes. A read failure or end of input counts as no.
func (x *Executor) confirm(format string, args ...interface{}) bool {
	fmt.Fprintf(x.out, format+"? [y/N] ", args...)
	line, err := x.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (x *Executor) fail(op, name string, err error) {
	entryErr := EntryError{Op: op, Name: name, Err: err}
	x.res.Failures = append(x.res.Failures, entryErr)
	output.Errorf(x.err, "%s", entryErr.Error())
	logger.Error("entry failed", "op", op, "name", name, "err", err)
}
