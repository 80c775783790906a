// internal/output/table.go
package output

import (
	"fmt"
	"io"

	"faget-core/fasta"
)

// Options controls how selected records are serialized.
type Options struct {
	Delimiter     string
	Columns       []int
	WriteSequence bool
}

// WriteTable writes one ID line per record (projected when columns are
// set) and, when WriteSequence is on, the sequence on the following
// line. Records are separated by nothing beyond their own newlines.
func WriteTable(w io.Writer, recs []fasta.Record, o Options) error {
	for _, r := range recs {
		if _, err := fmt.Fprintln(w, ProjectColumns(r.ID, o.Columns, o.Delimiter)); err != nil {
			return err
		}
		if !o.WriteSequence {
			continue
		}
		if _, err := fmt.Fprintln(w, r.Seq); err != nil {
			return err
		}
	}
	return nil
}
