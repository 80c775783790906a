// internal/output/fasta.go
package output

import (
	"io"

	"faget-core/fasta"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// fastaWidth is the wrap column for re-emitted FASTA records.
const fastaWidth = 60

// WriteFASTA re-emits the selected records as wrapped FASTA. The full
// header text is preserved as the sequence name.
func WriteFASTA(w io.Writer, recs []fasta.Record) error {
	fw := biofasta.NewWriter(w, fastaWidth)
	for _, r := range recs {
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Seq)), alphabet.DNA)
		if _, err := fw.Write(s); err != nil {
			return err
		}
	}
	return nil
}
