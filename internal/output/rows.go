// internal/output/rows.go
package output

import "strings"

// Output file formats.
const (
	FormatTable = "table"
	FormatFASTA = "fasta"
	FormatJSON  = "json"
)

// ProjectColumns splits id on whitespace and joins the fields at the
// given zero-based indices with delim. An out-of-range index resolves
// to an empty field rather than an error. A nil/empty column list
// returns the id verbatim.
func ProjectColumns(id string, columns []int, delim string) string {
	if len(columns) == 0 {
		return id
	}
	fields := strings.Fields(id)
	out := make([]string, len(columns))
	for i, c := range columns {
		if c < len(fields) {
			out[i] = fields[c]
		}
	}
	return strings.Join(out, delim)
}
