// Package snapshot captures the immediate children of a directory as an
// ordered sequence of indexed entries. The index is the only identity an
// entry keeps across the edit round-trip, so it is assigned once here and
// never reused.
package snapshot

import (
	"fmt"
	"os"
)

// ActionKind classifies what will happen to an entry when the resolved
// plan is executed.
type ActionKind int

// The zero value is Delete: an entry that is never mentioned in the
// edited listing is removed. Resolution flips entries to Keep or Rename;
// an entry still at Delete has not been visited yet, which is how
// duplicate references are detected.
const (
	Delete ActionKind = iota
	Keep
	Rename
)

// String returns a short label for the action kind.
func (k ActionKind) String() string {
	switch k {
	case Delete:
		return "delete"
	case Keep:
		return "keep"
	case Rename:
		return "rename"
	default:
		return "unknown"
	}
}

// Action is the resolved outcome for a single entry. NewName is only
// meaningful when Kind is Rename.
type Action struct {
	Kind    ActionKind
	NewName string
}

// Entry is one immediate child of the target directory. Name and Index
// are fixed when the snapshot is taken; Action is set exactly once during
// resolution.
type Entry struct {
	Name   string
	Index  int
	Action Action
}

// Snapshot is the ordered set of entries captured before editing begins.
type Snapshot struct {
	// Dir is the directory the snapshot was taken from.
	Dir string

	// Entries holds one entry per child, indexed by Entry.Index.
	Entries []Entry
}

// Take enumerates the immediate children of dir and returns a snapshot
// with dense indices 0..N-1 in enumeration order. The order is whatever
// the operating system yields; no sorting is applied. Names listed in
// exclude are skipped, which keeps a listing file left behind by a
// crashed run out of its own successor snapshot.
func Take(dir string, exclude ...string) (*Snapshot, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open directory %q: %w", dir, err)
	}
	defer f.Close()

	// File.ReadDir preserves directory order, unlike os.ReadDir which
	// sorts by name.
	children, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	snap := &Snapshot{
		Dir:     dir,
		Entries: make([]Entry, 0, len(children)),
	}
	for _, child := range children {
		name := child.Name()
		if _, ok := skip[name]; ok {
			continue
		}
		snap.Entries = append(snap.Entries, Entry{
			Name:  name,
			Index: len(snap.Entries),
		})
	}
	return snap, nil
}

// Len returns the number of entries in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Entries)
}
