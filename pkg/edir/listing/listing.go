// Package listing serializes a snapshot into the editable text form
// handed to the user's editor, and parses the edited result back into
// index/name records.
//
// Each line is an index field zero-padded to at least four digits,
// followed by whitespace, followed by the entry name through end of
// line. The padding exists only to make hand-editing pleasant; parsing
// accepts any digit run before the first space.
package listing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhenriksen/edir/pkg/edir/snapshot"
)

// FileName is the fixed name of the editable listing created in the
// target directory. A stale copy from a crashed run is overwritten.
const FileName = ".edir-listing"

// ErrParse indicates a line in the edited listing that cannot be read as
// an index/name record. The listing as a whole is untrusted once any
// line is malformed, so callers treat this as fatal.
var ErrParse = errors.New("listing parse error")

// Record is one parsed line of the edited listing.
type Record struct {
	Index int
	Name  string
}

// Write renders the snapshot in editable form, one line per entry in
// snapshot order.
func Write(w io.Writer, snap *snapshot.Snapshot) error {
	bw := bufio.NewWriter(w)
	for _, e := range snap.Entries {
		if _, err := fmt.Fprintf(bw, "%04d    %s\n", e.Index, e.Name); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}

// Parse reads the edited listing and returns one record per line. End of
// input terminates parsing normally. Any malformed line fails with
// ErrParse; a read failure is returned as-is.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		rec, err := parseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}
	return records, nil
}

// parseLine splits one line into its index and name fields. The index
// field runs from the start of the line to the first space and must be
// all digits; the name field is the remainder with surrounding
// whitespace trimmed.
func parseLine(line string) (Record, error) {
	cut := strings.IndexByte(line, ' ')
	if cut < 1 {
		return Record{}, fmt.Errorf("%w: missing index field", ErrParse)
	}
	field := line[:cut]
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return Record{}, fmt.Errorf("%w: bad index %q", ErrParse, field)
		}
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad index %q", ErrParse, field)
	}
	name := strings.TrimSpace(line[cut+1:])
	if name == "" {
		return Record{}, fmt.Errorf("%w: empty name for index %d", ErrParse, idx)
	}
	return Record{Index: idx, Name: name}, nil
}
