package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhenriksen/edir/pkg/edir/listing"
	"github.com/jhenriksen/edir/pkg/edir/snapshot"
)

func snapOf(names ...string) *snapshot.Snapshot {
	s := &snapshot.Snapshot{Dir: "/tmp/x"}
	for i, n := range names {
		s.Entries = append(s.Entries, snapshot.Entry{Name: n, Index: i})
	}
	return s
}

func TestApplyRoundTripKeepsEverything(t *testing.T) {
	snap := snapOf("a.txt", "b.txt", "c.txt")
	recs := []listing.Record{
		{Index: 0, Name: "a.txt"},
		{Index: 1, Name: "b.txt"},
		{Index: 2, Name: "c.txt"},
	}

	require.NoError(t, Apply(snap, recs))
	for _, e := range snap.Entries {
		assert.Equal(t, snapshot.Keep, e.Action.Kind, "entry %d", e.Index)
	}
}

func TestApplyDeletionByOmission(t *testing.T) {
	snap := snapOf("a.txt", "b.txt", "c.txt")
	recs := []listing.Record{
		{Index: 0, Name: "a.txt"},
		{Index: 2, Name: "c.txt"},
	}

	require.NoError(t, Apply(snap, recs))
	assert.Equal(t, snapshot.Keep, snap.Entries[0].Action.Kind)
	assert.Equal(t, snapshot.Delete, snap.Entries[1].Action.Kind)
	assert.Equal(t, snapshot.Keep, snap.Entries[2].Action.Kind)
}

func TestApplyRenameDetection(t *testing.T) {
	// The example from the listing format docs: rename index 0, drop
	// index 1, keep index 2.
	snap := snapOf("a.txt", "b.txt", "c.txt")
	recs := []listing.Record{
		{Index: 0, Name: "z.txt"},
		{Index: 2, Name: "c.txt"},
	}

	require.NoError(t, Apply(snap, recs))
	assert.Equal(t, snapshot.Rename, snap.Entries[0].Action.Kind)
	assert.Equal(t, "z.txt", snap.Entries[0].Action.NewName)
	assert.Equal(t, snapshot.Delete, snap.Entries[1].Action.Kind)
	assert.Equal(t, snapshot.Keep, snap.Entries[2].Action.Kind)
}

func TestApplyDuplicateIndex(t *testing.T) {
	snap := snapOf("a.txt", "b.txt")
	recs := []listing.Record{
		{Index: 0, Name: "a.txt"},
		{Index: 0, Name: "other.txt"},
	}

	err := Apply(snap, recs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateIndex)
}

func TestApplyIndexOutOfRange(t *testing.T) {
	snap := snapOf("a.txt", "b.txt")

	for _, idx := range []int{2, 3, 100, -1} {
		err := Apply(snapOf("a.txt", "b.txt"), []listing.Record{{Index: idx, Name: "x"}})
		require.Error(t, err, "index %d", idx)
		assert.ErrorIs(t, err, ErrIndexRange)
	}

	// Boundary: N-1 is the last valid index.
	require.NoError(t, Apply(snap, []listing.Record{{Index: 1, Name: "b.txt"}}))
}

func TestApplyRejectsTargetShadowingOriginalName(t *testing.T) {
	// b.txt still occupies its slot while a.txt renames, even though it
	// is itself renamed away later.
	snap := snapOf("a.txt", "b.txt")
	recs := []listing.Record{
		{Index: 0, Name: "b.txt"},
		{Index: 1, Name: "a.txt"},
	}

	err := Apply(snap, recs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestApplyRejectsDuplicateTargets(t *testing.T) {
	snap := snapOf("a.txt", "b.txt")
	recs := []listing.Record{
		{Index: 0, Name: "same.txt"},
		{Index: 1, Name: "same.txt"},
	}

	err := Apply(snap, recs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestApplyRejectsTargetOfDeletedEntry(t *testing.T) {
	// b.txt is deleted by omission, but deletes run in snapshot order
	// after this rename would, so the name is still taken.
	snap := snapOf("a.txt", "b.txt")
	recs := []listing.Record{{Index: 0, Name: "b.txt"}}

	err := Apply(snap, recs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameCollision)
}

func TestApplyInvalidTargetNames(t *testing.T) {
	for _, bad := range []string{"sub/child.txt", ".", ".."} {
		err := Apply(snapOf("a.txt"), []listing.Record{{Index: 0, Name: bad}})
		require.Error(t, err, "name %q", bad)
		assert.ErrorIs(t, err, ErrInvalidName)
	}
}

func TestApplyRejectsListingFileAsTarget(t *testing.T) {
	// The listing file is live in the directory while actions execute
	// and is removed afterwards; renaming onto it would destroy the
	// entry.
	snap := snapOf("a.txt")
	recs := []listing.Record{{Index: 0, Name: listing.FileName}}

	err := Apply(snap, recs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestApplyActionSetOnce(t *testing.T) {
	// Keeping and then renaming the same entry is still a duplicate,
	// even though the first record did not change the name.
	snap := snapOf("a.txt")
	recs := []listing.Record{
		{Index: 0, Name: "a.txt"},
		{Index: 0, Name: "a.txt"},
	}

	err := Apply(snap, recs)
	assert.ErrorIs(t, err, ErrDuplicateIndex)
}
