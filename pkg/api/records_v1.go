// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON schema for extracted FASTA records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	ID       string `json:"id"`
	Length   int    `json:"length"`
	Sequence string `json:"sequence,omitempty"`
}
