// Package session drives one full edit cycle: snapshot the directory,
// write the editable listing, hand it to the editor, reconcile the
// edits, and execute the resolved actions. The session owns the listing
// file's lifetime: once created it is removed on every exit path,
// including fatal ones.
package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jhenriksen/edir/pkg/edir/editor"
	"github.com/jhenriksen/edir/pkg/edir/executor"
	"github.com/jhenriksen/edir/pkg/edir/history"
	"github.com/jhenriksen/edir/pkg/edir/listing"
	"github.com/jhenriksen/edir/pkg/edir/logging"
	"github.com/jhenriksen/edir/pkg/edir/output"
	"github.com/jhenriksen/edir/pkg/edir/plan"
	"github.com/jhenriksen/edir/pkg/edir/remove"
	"github.com/jhenriksen/edir/pkg/edir/snapshot"
)

var logger = logging.Get("session")

// Session configures one edit cycle over a directory.
type Session struct {
	// Dir is the target directory.
	Dir string

	// Editor is the resolved editor command.
	Editor string

	// Policy controls execution behavior.
	Policy executor.Policy

	// Remover performs deletions; nil means permanent removal.
	Remover remove.Remover

	// History receives a record of the run when set. Recording
	// failures are warnings, never fatal.
	History *history.Store

	// In supplies confirmation answers. Defaults to os.Stdin.
	In io.Reader

	// Out receives prompts and reporting. Defaults to os.Stdout.
	Out io.Writer

	// Errout receives failure and warning lines. Defaults to os.Stderr.
	Errout io.Writer
}

// Run executes the full cycle and returns the execution result. A
// returned error is structural: nothing was executed and the run must
// abort. Per-entry failures are inside the result instead.
func (s *Session) Run() (executor.Result, error) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	errout := s.Errout
	if errout == nil {
		errout = os.Stderr
	}

	snap, err := snapshot.Take(s.Dir, listing.FileName)
	if err != nil {
		return executor.Result{}, err
	}
	logger.Debug("snapshot taken", "dir", s.Dir, "entries", snap.Len())

	path := filepath.Join(s.Dir, listing.FileName)
	// O_TRUNC: a listing left behind by a crashed run is overwritten.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return executor.Result{}, fmt.Errorf("create listing %q: %w", path, err)
	}
	// From here on the listing exists and must go away on every path.
	defer func() {
		if err := os.Remove(path); err != nil {
			output.Warnf(errout, "could not remove listing %q: %v", path, err)
		}
	}()

	if err := listing.Write(f, snap); err != nil {
		_ = f.Close()
		return executor.Result{}, err
	}
	if err := f.Close(); err != nil {
		return executor.Result{}, fmt.Errorf("close listing %q: %w", path, err)
	}

	if err := editor.Launch(s.Editor, path); err != nil {
		return executor.Result{}, err
	}

	edited, err := os.Open(path)
	if err != nil {
		return executor.Result{}, fmt.Errorf("reopen listing %q: %w", path, err)
	}
	records, err := listing.Parse(edited)
	_ = edited.Close()
	if err != nil {
		return executor.Result{}, err
	}

	if err := plan.Apply(snap, records); err != nil {
		return executor.Result{}, err
	}

	x := &executor.Executor{
		Policy:  s.Policy,
		In:      s.In,
		Out:     out,
		Errout:  errout,
		Remover: s.Remover,
	}
	res := x.Run(snap)

	if s.History != nil {
		if err := s.History.Append(s.record(res)); err != nil {
			output.Warnf(errout, "could not record history: %v", err)
		}
	}
	return res, nil
}

// record converts an execution result into a history record.
func (s *Session) record(res executor.Result) *history.Record {
	rec := &history.Record{
		Dir:      s.Dir,
		DryRun:   s.Policy.Normalize().DryRun,
		Failures: len(res.Failures),
	}
	for _, r := range res.Renames {
		rec.Renames = append(rec.Renames, history.RenameRecord{From: r.From, To: r.To})
	}
	for _, d := range res.Deletes {
		rec.Deletes = append(rec.Deletes, history.DeleteRecord{Name: d.Name, Dir: d.IsDir})
	}
	return rec
}
