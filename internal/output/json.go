// internal/output/json.go
package output

import (
	"io"

	"faget-core/fasta"
	"faget/internal/jsonutil"
	"faget/pkg/api"
)

// ToAPIRecord converts a domain record to the stable wire schema (v1).
// The sequence is dropped from the wire form when writeSeq is off.
func ToAPIRecord(r fasta.Record, writeSeq bool) api.RecordV1 {
	v := api.RecordV1{
		ID:     r.ID,
		Length: len(r.Seq),
	}
	if writeSeq {
		v.Sequence = r.Seq
	}
	return v
}

// WriteJSON writes a single pretty-indented JSON array of v1 records.
func WriteJSON(w io.Writer, recs []fasta.Record, writeSeq bool) error {
	out := make([]api.RecordV1, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToAPIRecord(r, writeSeq))
	}
	return jsonutil.EncodePretty(w, out)
}
