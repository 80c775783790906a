// core/fasta/record.go
package fasta

// Record is one parsed FASTA entry. ID is the full header text after
// '>' with surrounding whitespace trimmed; interior whitespace is kept
// because downstream column projection splits on it. Seq is the
// concatenation of all trimmed sequence lines, with no separators.
type Record struct {
	ID  string
	Seq string
}
