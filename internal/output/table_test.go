package output

import (
	"bytes"
	"strings"
	"testing"

	"faget-core/fasta"
)

func TestWriteTableLayout(t *testing.T) {
	recs := []fasta.Record{
		{ID: "a", Seq: "ACGT"},
		{ID: "b desc", Seq: "TTTT"},
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, recs, Options{Delimiter: "\t", WriteSequence: true}); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "a\nACGT\nb desc\nTTTT\n"
	if buf.String() != want {
		t.Fatalf("table = %q, want %q", buf.String(), want)
	}
}

func TestFASTARoundTrip(t *testing.T) {
	recs := []fasta.Record{
		{ID: "a", Seq: "ACGTACGT"},
		{ID: "b desc", Seq: "TTTTCCCC"},
	}
	var buf bytes.Buffer
	if err := WriteFASTA(&buf, recs); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := fasta.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("round trip lost records: %d != %d", len(got), len(recs))
	}
	for i := range recs {
		if got[i].ID != recs[i].ID || got[i].Seq != recs[i].Seq {
			t.Fatalf("record %d: got %+v, want %+v", i, got[i], recs[i])
		}
	}
}

func TestWriteTableProjected(t *testing.T) {
	recs := []fasta.Record{{ID: "seq1 len=10 type=dna", Seq: "ACGT"}}
	var buf bytes.Buffer
	err := WriteTable(&buf, recs, Options{Delimiter: "\t", Columns: []int{0, 2}, WriteSequence: true})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "seq1\ttype=dna\nACGT\n" {
		t.Fatalf("projected table = %q", buf.String())
	}
}

func TestWriteTableNoSequence(t *testing.T) {
	recs := []fasta.Record{
		{ID: "a", Seq: "ACGT"},
		{ID: "b", Seq: "TTTT"},
	}
	var buf bytes.Buffer
	err := WriteTable(&buf, recs, Options{Delimiter: "\t", Columns: []int{0}, WriteSequence: false})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "a\nb\n" {
		t.Fatalf("id-only table = %q, want two bare ID lines", buf.String())
	}
}
