// Package history records what each run did, one JSON file per run.
// The records are informational: they do not support undo, they exist
// so a user can answer "what did I just delete?".
package history

import "time"

// RenameRecord is one applied rename.
type RenameRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DeleteRecord is one applied deletion.
type DeleteRecord struct {
	Name string `json:"name"`
	Dir  bool   `json:"dir,omitempty"`
}

// Record summarizes a single run.
type Record struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Dir       string         `json:"dir"`
	DryRun    bool           `json:"dry_run,omitempty"`
	Renames   []RenameRecord `json:"renames,omitempty"`
	Deletes   []DeleteRecord `json:"deletes,omitempty"`
	Failures  int            `json:"failures,omitempty"`
}
