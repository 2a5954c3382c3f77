package executor

import (
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// treeStats summarizes a directory subtree for the delete prompt.
type treeStats struct {
	entries int64
	bytes   int64
}

// subtreeStats walks the subtree rooted at path and counts its entries
// and total file bytes. The walk is concurrent, so the counters are
// atomics. Unreadable children are skipped rather than failing the
// whole count.
func subtreeStats(path string) (treeStats, error) {
	conf := fastwalk.Config{
		Follow: false, // never cross symlinks when sizing a delete
	}

	var entries, bytes atomic.Int64
	err := fastwalk.Walk(&conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p == path {
			return nil
		}
		entries.Add(1)
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				bytes.Add(info.Size())
			}
		}
		return nil
	})
	if err != nil {
		return treeStats{}, err
	}
	return treeStats{entries: entries.Load(), bytes: bytes.Load()}, nil
}
