// internal/writers/records.go
package writers

import (
	"bufio"
	"fmt"

	"faget-core/fasta"
	"faget/internal/output"
)

// WriteRecords serializes the selected records to path in the given
// format. An empty path is a valid, silent no-op: the caller may only
// have wanted the console notices. The destination is always written
// from scratch and never survives a mid-write failure.
func WriteRecords(path, format string, recs []fasta.Record, o output.Options) error {
	if path == "" {
		return nil
	}
	return writeFile(path, func(w *bufio.Writer) error {
		switch format {
		case output.FormatTable:
			return output.WriteTable(w, recs, o)
		case output.FormatFASTA:
			return output.WriteFASTA(w, recs)
		case output.FormatJSON:
			return output.WriteJSON(w, recs, o.WriteSequence)
		default:
			return fmt.Errorf("unsupported output format %q", format)
		}
	})
}
