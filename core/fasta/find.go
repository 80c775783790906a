// core/fasta/find.go
package fasta

// Find returns the first record whose ID equals id exactly
// (case-sensitive). IDs are not guaranteed unique across a file, so
// file order decides.
func Find(recs []Record, id string) (Record, bool) {
	for _, r := range recs {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
