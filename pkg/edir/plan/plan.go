// Package plan reconciles parsed listing records against the original
// snapshot, classifying every entry as keep, rename, or delete and
// rejecting listings that cannot express a coherent intent.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhenriksen/edir/pkg/edir/listing"
	"github.com/jhenriksen/edir/pkg/edir/snapshot"
)

// Validation failures. All of them are fatal to the run: a listing that
// fails any of these checks cannot be trusted to express user intent,
// and nothing is executed.
var (
	ErrIndexRange     = errors.New("index out of range")
	ErrDuplicateIndex = errors.New("duplicate index")
	ErrInvalidName    = errors.New("invalid name")
	ErrNameCollision  = errors.New("rename target collision")
)

// Apply resolves each record against the snapshot, setting the matching
// entry's action exactly once. Entries never referenced keep their
// default delete action: removing a line from the listing is the
// deletion gesture, no explicit marker exists.
//
// An entry whose action is no longer the default has already been
// visited, so a second record for the same index fails as a duplicate
// without any separate bookkeeping.
func Apply(snap *snapshot.Snapshot, records []listing.Record) error {
	for _, rec := range records {
		if rec.Index < 0 || rec.Index >= snap.Len() {
			return fmt.Errorf("%w: %d (listing has %d entries)", ErrIndexRange, rec.Index, snap.Len())
		}
		e := &snap.Entries[rec.Index]
		if e.Action.Kind != snapshot.Delete {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, rec.Index)
		}
		if rec.Name == e.Name {
			e.Action = snapshot.Action{Kind: snapshot.Keep}
		} else {
			e.Action = snapshot.Action{Kind: snapshot.Rename, NewName: rec.Name}
		}
	}
	return validateTargets(snap)
}

// validateTargets rejects rename targets that would leave the directory
// in an ambiguous state. A target may not name a subpath, may not take
// the listing file's own name (the listing is live in the directory
// while the run executes and is removed afterwards), may not match any
// other entry's original name (renames run one at a time, so even a
// name that is itself being renamed away may still occupy its slot when
// this rename executes), and may not match another pending target.
func validateTargets(snap *snapshot.Snapshot) error {
	originals := make(map[string]int, snap.Len())
	for _, e := range snap.Entries {
		originals[e.Name] = e.Index
	}

	targets := make(map[string]int)
	for _, e := range snap.Entries {
		if e.Action.Kind != snapshot.Rename {
			continue
		}
		name := e.Action.NewName
		if name == "." || name == ".." || name == listing.FileName || strings.ContainsAny(name, "/\x00") {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		if other, ok := originals[name]; ok && other != e.Index {
			return fmt.Errorf("%w: %q -> %q shadows entry %d", ErrNameCollision, e.Name, name, other)
		}
		if other, ok := targets[name]; ok {
			return fmt.Errorf("%w: entries %d and %d both rename to %q", ErrNameCollision, other, e.Index, name)
		}
		targets[name] = e.Index
	}
	return nil
}
