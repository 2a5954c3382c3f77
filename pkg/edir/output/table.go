package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/jhenriksen/edir/pkg/edir/history"
)

// RenderHistory writes run records as an aligned table.
func RenderHistory(w io.Writer, records []history.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tWHEN\tDIRECTORY\tRENAMED\tDELETED\tFAILED"); err != nil {
		return err
	}
	for _, rec := range records {
		id := rec.ID
		if len(id) > 8 {
			id = id[:8]
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n",
			id, humanize.Time(rec.Timestamp), rec.Dir,
			len(rec.Renames), len(rec.Deletes), rec.Failures); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderRecord writes the full detail of one run record.
func RenderRecord(w io.Writer, rec *history.Record) {
	fmt.Fprintf(w, "ID:        %s\n", rec.ID)
	fmt.Fprintf(w, "When:      %s (%s)\n", rec.Timestamp.Local().Format("2006-01-02 15:04:05"), humanize.Time(rec.Timestamp))
	fmt.Fprintf(w, "Directory: %s\n", rec.Dir)
	if rec.DryRun {
		fmt.Fprintln(w, MutedStyle.Render("Dry run: nothing was modified"))
	}
	if len(rec.Renames) > 0 {
		fmt.Fprintln(w, "\nRenames:")
		for _, r := range rec.Renames {
			fmt.Fprintf(w, "  %s -> %s\n", r.From, r.To)
		}
	}
	if len(rec.Deletes) > 0 {
		fmt.Fprintln(w, "\nDeletes:")
		for _, d := range rec.Deletes {
			suffix := ""
			if d.Dir {
				suffix = "/"
			}
			fmt.Fprintf(w, "  %s%s\n", d.Name, suffix)
		}
	}
	if rec.Failures > 0 {
		fmt.Fprintf(w, "\nFailures: %d\n", rec.Failures)
	}
}
